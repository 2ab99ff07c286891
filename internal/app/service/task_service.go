package service

import (
	"context"

	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
	"github.com/NanduBolleddu/Todofy-project/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.CreateTask(ctx, userID, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID string, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, userID, taskID, input)
}

func (s *TaskService) ToggleTask(ctx context.Context, userID string, taskID uint64) (domain.Task, error) {
	return s.taskRepository.ToggleTask(ctx, userID, taskID)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID string, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, userID, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
