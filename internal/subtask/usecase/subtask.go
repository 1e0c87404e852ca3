package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/subtask"
	"smart-task-manager/internal/subtask/repository"
)

// List returns the subtasks of a task ordered by position.
func (uc *implUseCase) List(ctx context.Context, taskID string) ([]model.Subtask, error) {
	id, err := canonicalTaskID(taskID)
	if err != nil {
		return nil, err
	}

	subtasks, err := uc.repo.ListByTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.List: task=%s: %v", id, err)
		return nil, err
	}
	return subtasks, nil
}

// Create stores a new subtask, appending it when no order is given.
func (uc *implUseCase) Create(ctx context.Context, input subtask.CreateInput) (model.Subtask, error) {
	taskID, err := canonicalTaskID(input.TaskID)
	if err != nil {
		return model.Subtask{}, err
	}
	title, err := cleanTitle(input.Title)
	if err != nil {
		return model.Subtask{}, err
	}

	order := 0
	if input.Order != nil {
		if *input.Order < 0 {
			return model.Subtask{}, fmt.Errorf("%w: order must not be negative", subtask.ErrInvalidPayload)
		}
		order = *input.Order
	} else {
		existing, err := uc.repo.ListByTask(ctx, taskID)
		if err != nil {
			uc.l.Errorf(ctx, "subtask.usecase.Create: list task=%s: %v", taskID, err)
			return model.Subtask{}, err
		}
		order = nextOrder(existing)
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		ID:     uuid.NewString(),
		TaskID: taskID,
		Title:  title,
		Order:  order,
		Now:    uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.Create: task=%s: %v", taskID, err)
		return model.Subtask{}, err
	}

	uc.l.Infof(ctx, "subtask.usecase.Create: task=%s subtask=%s order=%d", taskID, created.ID, created.Order)
	return created, nil
}

// Update applies a partial update.
func (uc *implUseCase) Update(ctx context.Context, input subtask.UpdateInput) (model.Subtask, error) {
	id, err := validSubtaskID(input.ID)
	if err != nil {
		return model.Subtask{}, err
	}

	opt := repository.UpdateOptions{ID: id, Now: uc.now()}
	if input.Title != nil {
		title, err := cleanTitle(*input.Title)
		if err != nil {
			return model.Subtask{}, err
		}
		opt.Title = &title
	}
	if input.Order != nil {
		if *input.Order < 0 {
			return model.Subtask{}, fmt.Errorf("%w: order must not be negative", subtask.ErrInvalidPayload)
		}
		opt.Order = input.Order
	}
	if input.Completed != nil {
		opt.Completed = input.Completed
		if *input.Completed {
			opt.CompletedAt = &opt.Now
		}
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.Update: subtask=%s: %v", id, err)
		return model.Subtask{}, mapRepoError(err)
	}
	return updated, nil
}

// Delete removes a subtask.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	id, err := validSubtaskID(id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.Delete: subtask=%s: %v", id, err)
		return mapRepoError(err)
	}
	return nil
}

// Complete marks a subtask done.
func (uc *implUseCase) Complete(ctx context.Context, id string) (model.Subtask, error) {
	done := true
	return uc.Update(ctx, subtask.UpdateInput{ID: id, Completed: &done})
}

// Uncomplete reopens a subtask and clears its completion time.
func (uc *implUseCase) Uncomplete(ctx context.Context, id string) (model.Subtask, error) {
	done := false
	return uc.Update(ctx, subtask.UpdateInput{ID: id, Completed: &done})
}

// Reorder sets each subtask's order to its index in input.SubtaskIDs.
// The list must name every subtask of the task exactly once.
func (uc *implUseCase) Reorder(ctx context.Context, input subtask.ReorderInput) ([]model.Subtask, error) {
	taskID, err := canonicalTaskID(input.TaskID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListByTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.Reorder: list task=%s: %v", taskID, err)
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		known[s.ID] = struct{}{}
	}

	orders := make(map[string]int, len(input.SubtaskIDs))
	for i, raw := range input.SubtaskIDs {
		id, err := validSubtaskID(raw)
		if err != nil {
			return nil, err
		}
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: subtask %s does not belong to task %s", subtask.ErrInvalidPayload, id, taskID)
		}
		if _, dup := orders[id]; dup {
			return nil, fmt.Errorf("%w: subtask %s listed twice", subtask.ErrInvalidPayload, id)
		}
		orders[id] = i
	}
	if len(orders) != len(existing) {
		return nil, fmt.Errorf("%w: reorder lists %d of %d subtasks", subtask.ErrInvalidPayload, len(orders), len(existing))
	}

	if len(orders) > 0 {
		if err := uc.repo.SetOrders(ctx, taskID, orders, uc.now()); err != nil {
			uc.l.Errorf(ctx, "subtask.usecase.Reorder: task=%s: %v", taskID, err)
			return nil, err
		}
	}

	return uc.repo.ListByTask(ctx, taskID)
}

// CompleteAll marks every subtask of a task done.
func (uc *implUseCase) CompleteAll(ctx context.Context, taskID string) ([]model.Subtask, error) {
	id, err := canonicalTaskID(taskID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CompleteAll(ctx, id, uc.now()); err != nil {
		uc.l.Errorf(ctx, "subtask.usecase.CompleteAll: task=%s: %v", id, err)
		return nil, err
	}
	return uc.repo.ListByTask(ctx, id)
}

func nextOrder(existing []model.Subtask) int {
	if len(existing) == 0 {
		return 0
	}
	highest := existing[0].Order
	for _, s := range existing[1:] {
		if s.Order > highest {
			highest = s.Order
		}
	}
	return highest + 1
}
