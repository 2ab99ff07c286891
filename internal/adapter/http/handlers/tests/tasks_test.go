package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/dto"
	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/handlers"
	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/middleware"
	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
	"github.com/NanduBolleddu/Todofy-project/pkg/apierrors"
	"github.com/NanduBolleddu/Todofy-project/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID string, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, userID string, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID string, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

// verifierStub accepts any bearer token as the configured identity.
type verifierStub struct {
	identity domain.Identity
}

func (v verifierStub) Verify(_ context.Context, _ string) (domain.Identity, error) {
	return v.identity, nil
}

const testSubject = "6f1e6c3a-user-a"

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	router := gin.New()
	handler := handlers.NewTaskHandler(serviceMock)
	auth := middleware.RequireAuth(verifierStub{identity: domain.Identity{Subject: testSubject, Username: "alice"}})

	tasks := router.Group("/tasks")
	tasks.Use(middleware.LanguageMiddleware(), auth)
	{
		tasks.GET("", handler.ListTasks)
		tasks.POST("", handler.CreateTask)
		tasks.PUT("/:id", handler.UpdateTask)
		tasks.DELETE("/:id", handler.DeleteTask)
		tasks.PATCH("/:id/toggle", handler.ToggleTask)
	}

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleTask(id uint64, title string, completed bool) domain.Task {
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return domain.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
		UserID:    testSubject,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "milk and eggs"

	serviceMock := new(taskServiceMock)
	first := sampleTask(3, "Buy milk", false)
	first.Description = &description
	serviceMock.On("ListTasks", mock.Anything, testSubject).Return(
		[]domain.Task{first, sampleTask(2, "Write report", true), sampleTask(1, "Call plumber", false)},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)

	// Newest first, as returned by the repository.
	require.Equal(t, uint64(3), got[0].ID)
	require.Equal(t, uint64(2), got[1].ID)
	require.Equal(t, uint64(1), got[2].ID)

	require.Equal(t, "Buy milk", got[0].Title)
	require.Equal(t, "milk and eggs", *got[0].Description)
	require.False(t, got[0].Completed)
	require.True(t, got[1].Completed)
	require.Equal(t, testSubject, got[0].UserID)
	require.Equal(t, "2026-03-01T09:00:00Z", got[0].CreatedAt)
	require.Equal(t, "2026-03-01T10:00:00Z", got[0].UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_EmptyList(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testSubject).Return([]domain.Task{}, nil).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testSubject).Return(nil, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/tasks", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to fetch tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_MissingToken(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	serviceMock.AssertNotCalled(t, "ListTasks")
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	description := "semi-skimmed"

	serviceMock := new(taskServiceMock)
	created := sampleTask(7, "Buy milk", false)
	created.Description = &description
	serviceMock.On("CreateTask", mock.Anything, testSubject, domain.CreateTaskInput{
		Title:       "Buy milk",
		Description: &description,
	}).Return(created, nil).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPost, "/tasks", `{"title":"Buy milk","description":"semi-skimmed"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(7), got.ID)
	require.Equal(t, "Buy milk", got.Title)
	require.False(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	rec := doRequest(router, http.MethodPost, "/tasks", `{"description":"no title"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Title is required", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_CreateTask_WhitespaceTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	rec := doRequest(router, http.MethodPost, "/tasks", `{"title":"   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_CreateTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, testSubject, mock.Anything).
		Return(domain.Task{}, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPost, "/tasks", `{"title":"Buy milk"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to add task", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	updated := sampleTask(5, "Buy oat milk", false)
	serviceMock.On("UpdateTask", mock.Anything, testSubject, uint64(5), domain.UpdateTaskInput{
		Title: "Buy oat milk",
	}).Return(updated, nil).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPut, "/tasks/5", `{"title":"Buy oat milk"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(5), got.ID)
	require.Equal(t, "Buy oat milk", got.Title)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidTaskID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	rec := doRequest(router, http.MethodPut, "/tasks/invalid", `{"title":"Renamed"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "UpdateTask")
}

func TestTaskHandler_UpdateTask_EmptyTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	rec := doRequest(router, http.MethodPut, "/tasks/5", `{"title":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "UpdateTask")
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, testSubject, uint64(999999), mock.Anything).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPut, "/tasks/999999", `{"title":"Renamed"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	toggled := sampleTask(5, "Buy milk", true)
	serviceMock.On("ToggleTask", mock.Anything, testSubject, uint64(5)).Return(toggled, nil).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPatch, "/tasks/5/toggle", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleTask", mock.Anything, testSubject, uint64(42)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodPatch, "/tasks/42/toggle", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testSubject, uint64(5)).Return(nil).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodDelete, "/tasks/5", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testSubject, uint64(999999)).
		Return(domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodDelete, "/tasks/999999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testSubject, uint64(5)).
		Return(errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)
	rec := doRequest(router, http.MethodDelete, "/tasks/5", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to delete task", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
