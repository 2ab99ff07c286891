package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
	"github.com/NanduBolleddu/Todofy-project/internal/core/ports"
)

// Every statement is scoped by user_id; a task owned by another user behaves
// exactly like a missing row.
const (
	listTasksQuery = `
SELECT id, title, description, completed, user_id, created_at, updated_at
FROM tasks
WHERE user_id = $1
ORDER BY id DESC;
`

	createTaskQuery = `
INSERT INTO tasks (title, description, completed, user_id)
VALUES ($1, $2, FALSE, $3)
RETURNING id, title, description, completed, user_id, created_at, updated_at;
`

	updateTaskQuery = `
UPDATE tasks
SET title = $1, description = $2, updated_at = now()
WHERE id = $3 AND user_id = $4
RETURNING id, title, description, completed, user_id, created_at, updated_at;
`

	toggleTaskQuery = `
UPDATE tasks
SET completed = NOT completed, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING id, title, description, completed, user_id, created_at, updated_at;
`

	deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	UserID      string         `db:"user_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, createTaskQuery, input.Title, descriptionValue(input.Description), userID)
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, userID string, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, updateTaskQuery, input.Title, descriptionValue(input.Description), taskID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ToggleTask(ctx context.Context, userID string, taskID uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, toggleTaskQuery, taskID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, userID string, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func descriptionValue(description *string) sql.NullString {
	if description == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *description, Valid: true}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Completed: row.Completed,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
