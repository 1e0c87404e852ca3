package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-task-manager/internal/subtask"
	"smart-task-manager/internal/subtask/repository"
	"smart-task-manager/pkg/taskid"
)

const maxTitleLength = 255

// canonicalTaskID reduces a task or recurring instance id to its task UUID.
func canonicalTaskID(raw string) (string, error) {
	id, err := taskid.Canonical(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", subtask.ErrInvalidTaskID, raw)
	}
	return id, nil
}

func validSubtaskID(raw string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", subtask.ErrInvalidSubtaskID, raw)
	}
	return u.String(), nil
}

func cleanTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", subtask.ErrInvalidPayload)
	}
	if len([]rune(title)) > maxTitleLength {
		return "", fmt.Errorf("%w: title is longer than %d characters", subtask.ErrInvalidPayload, maxTitleLength)
	}
	return title, nil
}

// mapRepoError turns repository.ErrNotFound into the domain error.
func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return subtask.ErrSubtaskNotFound
	}
	return err
}
