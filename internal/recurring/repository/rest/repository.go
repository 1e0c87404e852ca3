package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring/repository"
	"smart-task-manager/pkg/backend"
)

const (
	table      = "recurring_task_completions"
	onConflict = "task_id,user_id,instance_date"
)

// completionRow is the snake_case wire form of a completion record.
type completionRow struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	UserID       string    `json:"user_id"`
	InstanceDate string    `json:"instance_date"`
	CompletedAt  time.Time `json:"completed_at"`
}

func (r completionRow) toModel() model.RecurringCompletion {
	return model.RecurringCompletion{
		ID:           r.ID,
		TaskID:       r.TaskID,
		UserID:       r.UserID,
		InstanceDate: r.InstanceDate,
		CompletedAt:  r.CompletedAt,
	}
}

type implRepository struct {
	client *backend.Client
}

// New creates a completion repository backed by the managed REST backend.
func New(client *backend.Client) repository.Repository {
	return &implRepository{client: client}
}

func (r *implRepository) Upsert(ctx context.Context, c model.RecurringCompletion) (model.RecurringCompletion, error) {
	row := completionRow{
		ID:           c.ID,
		TaskID:       c.TaskID,
		UserID:       c.UserID,
		InstanceDate: c.InstanceDate,
		CompletedAt:  c.CompletedAt,
	}

	var rows []completionRow
	if err := r.client.Upsert(ctx, table, row, onConflict, &rows); err != nil {
		return model.RecurringCompletion{}, fmt.Errorf("failed to upsert completion: %w", err)
	}
	if len(rows) == 0 {
		return row.toModel(), nil
	}
	return rows[0].toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, opt repository.DeleteOptions) error {
	filter := url.Values{}
	filter.Set("task_id", backend.Eq(opt.TaskID))
	filter.Set("user_id", backend.Eq(opt.UserID))
	filter.Set("instance_date", backend.Eq(opt.InstanceDate))

	if err := r.client.Delete(ctx, table, filter, nil); err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.RecurringCompletion, error) {
	query := url.Values{}
	query.Set("task_id", backend.Eq(opt.TaskID))
	query.Set("user_id", backend.Eq(opt.UserID))
	if opt.From != "" {
		query.Add("instance_date", backend.Gte(opt.From))
	}
	if opt.To != "" {
		query.Add("instance_date", backend.Lte(opt.To))
	}
	query.Set("order", "instance_date.asc")

	var rows []completionRow
	if err := r.client.Select(ctx, table, query, &rows); err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}

	out := make([]model.RecurringCompletion, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
