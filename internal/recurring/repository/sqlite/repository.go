package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring/repository"
)

type implRepository struct {
	db *sql.DB
}

// New creates a completion repository on the local SQLite store.
func New(db *sql.DB) repository.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) Upsert(ctx context.Context, c model.RecurringCompletion) (model.RecurringCompletion, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO recurring_task_completions (id, task_id, user_id, instance_date, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (task_id, user_id, instance_date)
		DO UPDATE SET completed_at = excluded.completed_at`,
		c.ID, c.TaskID, c.UserID, c.InstanceDate, c.CompletedAt.UnixMilli(),
	)
	if err != nil {
		return model.RecurringCompletion{}, fmt.Errorf("failed to upsert completion: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, task_id, user_id, instance_date, completed_at
		FROM recurring_task_completions
		WHERE task_id = ? AND user_id = ? AND instance_date = ?`,
		c.TaskID, c.UserID, c.InstanceDate,
	)
	return scanCompletion(row)
}

func (r *implRepository) Delete(ctx context.Context, opt repository.DeleteOptions) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM recurring_task_completions WHERE task_id = ? AND user_id = ? AND instance_date = ?`,
		opt.TaskID, opt.UserID, opt.InstanceDate,
	)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.RecurringCompletion, error) {
	query := `
		SELECT id, task_id, user_id, instance_date, completed_at
		FROM recurring_task_completions
		WHERE task_id = ? AND user_id = ?`
	args := []any{opt.TaskID, opt.UserID}
	if opt.From != "" {
		query += ` AND instance_date >= ?`
		args = append(args, opt.From)
	}
	if opt.To != "" {
		query += ` AND instance_date <= ?`
		args = append(args, opt.To)
	}
	query += ` ORDER BY instance_date ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var out []model.RecurringCompletion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompletion(s scanner) (model.RecurringCompletion, error) {
	var (
		c           model.RecurringCompletion
		completedAt int64
	)
	if err := s.Scan(&c.ID, &c.TaskID, &c.UserID, &c.InstanceDate, &completedAt); err != nil {
		return model.RecurringCompletion{}, fmt.Errorf("failed to scan completion: %w", err)
	}
	c.CompletedAt = time.UnixMilli(completedAt).UTC()
	return c, nil
}
