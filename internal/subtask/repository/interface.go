package repository

import (
	"context"
	"errors"
	"time"

	"smart-task-manager/internal/model"
)

// ErrNotFound is returned when no subtask has the requested id.
var ErrNotFound = errors.New("subtask not found")

// Repository persists subtasks. Implementations expect canonical task ids.
type Repository interface {
	ListByTask(ctx context.Context, taskID string) ([]model.Subtask, error)
	Get(ctx context.Context, id string) (model.Subtask, error)
	Create(ctx context.Context, opt CreateOptions) (model.Subtask, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Subtask, error)
	Delete(ctx context.Context, id string) error
	// SetOrders writes order values keyed by subtask id, all within taskID.
	SetOrders(ctx context.Context, taskID string, orders map[string]int, now time.Time) error
	// CompleteAll marks every open subtask of taskID completed at now.
	CompleteAll(ctx context.Context, taskID string, now time.Time) error
}
