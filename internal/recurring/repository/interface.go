package repository

import (
	"context"

	"smart-task-manager/internal/model"
)

// Repository persists completion records keyed by (task, user, date).
type Repository interface {
	// Upsert stores c, replacing the completion time of an existing record.
	Upsert(ctx context.Context, c model.RecurringCompletion) (model.RecurringCompletion, error)
	Delete(ctx context.Context, opt DeleteOptions) error
	List(ctx context.Context, opt ListOptions) ([]model.RecurringCompletion, error)
}
