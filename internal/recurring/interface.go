package recurring

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase tracks which occurrences of a recurring task a user completed.
type UseCase interface {
	// Complete records the occurrence as done; repeating it is harmless.
	Complete(ctx context.Context, sc model.Scope, input CompleteInput) (model.RecurringCompletion, error)
	// Uncomplete removes the record; a missing record is not an error.
	Uncomplete(ctx context.Context, sc model.Scope, input UncompleteInput) error
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.RecurringCompletion, error)
}
