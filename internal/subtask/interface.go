package subtask

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase manages the checklist steps of a task. Task ids may be recurring
// instance ids; they are reduced to the canonical task UUID before storage.
type UseCase interface {
	List(ctx context.Context, taskID string) ([]model.Subtask, error)
	Create(ctx context.Context, input CreateInput) (model.Subtask, error)
	Update(ctx context.Context, input UpdateInput) (model.Subtask, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (model.Subtask, error)
	Uncomplete(ctx context.Context, id string) (model.Subtask, error)
	Reorder(ctx context.Context, input ReorderInput) ([]model.Subtask, error)
	CompleteAll(ctx context.Context, taskID string) ([]model.Subtask, error)
}
