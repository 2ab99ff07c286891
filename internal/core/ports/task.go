package ports

import (
	"context"

	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, userID string, taskID uint64) (domain.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, userID string, taskID uint64) (domain.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID uint64) error
}
