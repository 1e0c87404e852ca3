package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/subtask/repository"
	"smart-task-manager/pkg/backend"
)

// maxParallelWrites bounds concurrent PATCH calls during a reorder.
const maxParallelWrites = 4

type implRepository struct {
	client *backend.Client
}

// New creates a subtask repository backed by the managed REST backend.
func New(client *backend.Client) repository.Repository {
	return &implRepository{client: client}
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]model.Subtask, error) {
	query := url.Values{}
	query.Set("task_id", backend.Eq(taskID))
	query.Set("order", "order.asc,created_at.asc")

	var rows []subtaskRow
	if err := r.client.Select(ctx, table, query, &rows); err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return toModels(rows), nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Subtask, error) {
	query := url.Values{}
	query.Set("id", backend.Eq(id))

	var rows []subtaskRow
	if err := r.client.Select(ctx, table, query, &rows); err != nil {
		return model.Subtask{}, fmt.Errorf("failed to get subtask: %w", err)
	}
	if len(rows) == 0 {
		return model.Subtask{}, repository.ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Subtask, error) {
	row := subtaskRow{
		ID:        opt.ID,
		TaskID:    opt.TaskID,
		Title:     opt.Title,
		Order:     opt.Order,
		CreatedAt: opt.Now,
		UpdatedAt: opt.Now,
	}

	var rows []subtaskRow
	if err := r.client.Insert(ctx, table, row, &rows); err != nil {
		return model.Subtask{}, fmt.Errorf("failed to create subtask: %w", err)
	}
	if len(rows) == 0 {
		return row.toModel(), nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Subtask, error) {
	patch := map[string]any{"updated_at": opt.Now}
	if opt.Title != nil {
		patch["title"] = *opt.Title
	}
	if opt.Order != nil {
		patch["order"] = *opt.Order
	}
	if opt.Completed != nil {
		patch["completed"] = *opt.Completed
		patch["completed_at"] = opt.CompletedAt
	}

	filter := url.Values{}
	filter.Set("id", backend.Eq(opt.ID))

	var rows []subtaskRow
	if err := r.client.Update(ctx, table, filter, patch, &rows); err != nil {
		return model.Subtask{}, fmt.Errorf("failed to update subtask: %w", err)
	}
	if len(rows) == 0 {
		return model.Subtask{}, repository.ErrNotFound
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	filter := url.Values{}
	filter.Set("id", backend.Eq(id))
	var rows []subtaskRow
	if err := r.client.Delete(ctx, table, filter, &rows); err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	if len(rows) == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetOrders issues one PATCH per subtask. PostgREST has no bulk update with
// per-row values, so the calls fan out with bounded parallelism.
func (r *implRepository) SetOrders(ctx context.Context, taskID string, orders map[string]int, now time.Time) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelWrites)

	for id, order := range orders {
		filter := url.Values{}
		filter.Set("id", backend.Eq(id))
		filter.Set("task_id", backend.Eq(taskID))
		patch := map[string]any{"order": order, "updated_at": now}

		g.Go(func() error {
			return r.client.Update(gctx, table, filter, patch, nil)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to reorder subtasks: %w", err)
	}
	return nil
}

func (r *implRepository) CompleteAll(ctx context.Context, taskID string, now time.Time) error {
	filter := url.Values{}
	filter.Set("task_id", backend.Eq(taskID))
	filter.Set("completed", backend.Eq("false"))
	patch := map[string]any{"completed": true, "completed_at": now, "updated_at": now}

	if err := r.client.Update(ctx, table, filter, patch, nil); err != nil {
		return fmt.Errorf("failed to complete subtasks: %w", err)
	}
	return nil
}
