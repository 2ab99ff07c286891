package validation

import (
	"errors"
	"strings"

	"github.com/NanduBolleddu/Todofy-project/internal/adapter/http/dto"
	"github.com/NanduBolleddu/Todofy-project/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput rejects empty or whitespace-only titles; the store
// never sees an invalid title.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
	}, nil
}
