package subtask

import (
	"errors"

	"smart-task-manager/pkg/taskid"
)

// Domain-specific errors for the subtask package.
var (
	ErrInvalidTaskID    = taskid.ErrInvalidTaskID
	ErrInvalidSubtaskID = errors.New("invalid subtask id")
	ErrSubtaskNotFound  = errors.New("subtask not found")
	ErrInvalidPayload   = errors.New("invalid subtask payload")
)
