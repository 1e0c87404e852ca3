package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring"
	"smart-task-manager/internal/recurring/repository"
	"smart-task-manager/pkg/taskid"
	"smart-task-manager/pkg/validation"
)

// Complete upserts the completion record of one occurrence.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input recurring.CompleteInput) (model.RecurringCompletion, error) {
	taskID, date, err := uc.resolveOccurrence(sc, input.TaskID, input.InstanceDate)
	if err != nil {
		return model.RecurringCompletion{}, err
	}

	c, err := uc.repo.Upsert(ctx, model.RecurringCompletion{
		ID:           uuid.NewString(),
		TaskID:       taskID,
		UserID:       sc.UserID,
		InstanceDate: date,
		CompletedAt:  uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Complete: task=%s date=%s: %v", taskID, date, err)
		return model.RecurringCompletion{}, err
	}

	uc.l.Infof(ctx, "recurring.usecase.Complete: user=%s task=%s date=%s", sc.UserID, taskID, date)
	return c, nil
}

// Uncomplete deletes the completion record of one occurrence.
func (uc *implUseCase) Uncomplete(ctx context.Context, sc model.Scope, input recurring.UncompleteInput) error {
	taskID, date, err := uc.resolveOccurrence(sc, input.TaskID, input.InstanceDate)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, repository.DeleteOptions{TaskID: taskID, UserID: sc.UserID, InstanceDate: date}); err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.Uncomplete: task=%s date=%s: %v", taskID, date, err)
		return err
	}
	return nil
}

// List returns the user's completions of a task within [From, To].
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input recurring.ListInput) ([]model.RecurringCompletion, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return nil, recurring.ErrMissingUser
	}
	taskID, err := taskid.Canonical(input.TaskID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	for _, bound := range []string{input.From, input.To} {
		if bound == "" {
			continue
		}
		if res := validation.ValidateDate(bound, now); !res.IsValid {
			return nil, fmt.Errorf("%w: %s", recurring.ErrInvalidInstanceDate, res.Error)
		}
	}
	if input.From != "" && input.To != "" && input.From > input.To {
		return nil, fmt.Errorf("%w: from %s is after to %s", recurring.ErrInvalidInstanceDate, input.From, input.To)
	}

	list, err := uc.repo.List(ctx, repository.ListOptions{TaskID: taskID, UserID: sc.UserID, From: input.From, To: input.To})
	if err != nil {
		uc.l.Errorf(ctx, "recurring.usecase.List: task=%s: %v", taskID, err)
		return nil, err
	}
	return list, nil
}

// resolveOccurrence returns the canonical task id and a validated instance
// date. An explicit date wins over the one embedded in an instance id.
func (uc *implUseCase) resolveOccurrence(sc model.Scope, rawTaskID, rawDate string) (string, string, error) {
	if strings.TrimSpace(sc.UserID) == "" {
		return "", "", recurring.ErrMissingUser
	}

	id, err := taskid.Parse(rawTaskID)
	if err != nil {
		return "", "", err
	}

	date := strings.TrimSpace(rawDate)
	if date == "" {
		date = id.InstanceDate()
	}
	if date == "" {
		return "", "", fmt.Errorf("%w: instance date is required", recurring.ErrInvalidInstanceDate)
	}

	if res := validation.ValidateDate(date, uc.now()); !res.IsValid {
		return "", "", fmt.Errorf("%w: %s", recurring.ErrInvalidInstanceDate, res.Error)
	}
	return id.Canonical, date, nil
}
