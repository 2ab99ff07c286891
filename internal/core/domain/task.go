package domain

import "time"

// Task is a single to-do item owned by exactly one user. UserID is the
// subject identifier taken from the owner's token and never changes after
// creation.
type Task struct {
	ID          uint64
	Title       string
	Description *string
	Completed   bool
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
}

// UpdateTaskInput replaces title and description wholesale; a nil
// Description clears the stored value.
type UpdateTaskInput struct {
	Title       string
	Description *string
}
