package recurring

import (
	"errors"

	"smart-task-manager/pkg/taskid"
)

// Domain-specific errors for the recurring package.
var (
	ErrInvalidTaskID       = taskid.ErrInvalidTaskID
	ErrInvalidInstanceDate = errors.New("invalid instance date")
	ErrMissingUser         = errors.New("missing user")
)
