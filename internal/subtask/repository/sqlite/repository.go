package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/subtask/repository"
)

const selectColumns = `id, task_id, title, completed, sort_order, created_at, updated_at, completed_at`

type implRepository struct {
	db *sql.DB
}

// New creates a subtask repository on the local SQLite store.
func New(db *sql.DB) repository.Repository {
	return &implRepository{db: db}
}

func (r *implRepository) ListByTask(ctx context.Context, taskID string) ([]model.Subtask, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM subtasks WHERE task_id = ? ORDER BY sort_order ASC, created_at ASC`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	defer rows.Close()

	var out []model.Subtask
	for rows.Next() {
		s, err := scanSubtask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subtasks: %w", err)
	}
	return out, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Subtask, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM subtasks WHERE id = ?`, id)
	s, err := scanSubtask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Subtask{}, repository.ErrNotFound
	}
	return s, err
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Subtask, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subtasks (id, task_id, title, completed, sort_order, created_at, updated_at) VALUES (?, ?, ?, 0, ?, ?, ?)`,
		opt.ID, opt.TaskID, opt.Title, opt.Order, opt.Now.UnixMilli(), opt.Now.UnixMilli(),
	)
	if err != nil {
		return model.Subtask{}, fmt.Errorf("failed to create subtask: %w", err)
	}
	return r.Get(ctx, opt.ID)
}

func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Subtask, error) {
	sets := []string{"updated_at = ?"}
	args := []any{opt.Now.UnixMilli()}
	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Order != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *opt.Order)
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?", "completed_at = ?")
		args = append(args, boolToInt(*opt.Completed), toNullMillis(opt.CompletedAt))
	}
	args = append(args, opt.ID)

	res, err := r.db.ExecContext(ctx, `UPDATE subtasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return model.Subtask{}, fmt.Errorf("failed to update subtask: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Subtask{}, repository.ErrNotFound
	}
	return r.Get(ctx, opt.ID)
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetOrders writes every order in one transaction.
func (r *implRepository) SetOrders(ctx context.Context, taskID string, orders map[string]int, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE subtasks SET sort_order = ?, updated_at = ? WHERE id = ? AND task_id = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare reorder: %w", err)
	}
	defer stmt.Close()

	for id, order := range orders {
		if _, err := stmt.ExecContext(ctx, order, now.UnixMilli(), id, taskID); err != nil {
			return fmt.Errorf("failed to reorder subtask %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

func (r *implRepository) CompleteAll(ctx context.Context, taskID string, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subtasks SET completed = 1, completed_at = ?, updated_at = ? WHERE task_id = ? AND completed = 0`,
		now.UnixMilli(), now.UnixMilli(), taskID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete subtasks: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubtask(s scanner) (model.Subtask, error) {
	var (
		sub         model.Subtask
		completed   int
		createdAt   int64
		updatedAt   int64
		completedAt sql.NullInt64
	)
	err := s.Scan(&sub.ID, &sub.TaskID, &sub.Title, &completed, &sub.Order, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subtask{}, err
		}
		return model.Subtask{}, fmt.Errorf("failed to scan subtask: %w", err)
	}

	sub.Completed = completed != 0
	sub.CreatedAt = time.UnixMilli(createdAt).UTC()
	sub.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	if completedAt.Valid {
		t := time.UnixMilli(completedAt.Int64).UTC()
		sub.CompletedAt = &t
	}
	return sub, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toNullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
