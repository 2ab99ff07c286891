package domain

import "errors"

// ErrTaskNotFound covers both "no such task" and "task owned by another
// user"; the two cases are deliberately indistinguishable to callers.
var ErrTaskNotFound = errors.New("task not found")
