package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/subtask/repository"
	"smart-task-manager/pkg/sqlitedb"
)

func setup(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlitedb.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestRepository_CRUD(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, repository.CreateOptions{ID: "s1", TaskID: "t1", Title: "a", Order: 3, Now: now})
	require.NoError(t, err)
	assert.Equal(t, "a", created.Title)
	assert.Equal(t, 3, created.Order)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CompletedAt)
	assert.True(t, created.CreatedAt.Equal(now))

	done := true
	later := now.Add(time.Hour)
	updated, err := repo.Update(ctx, repository.UpdateOptions{ID: "s1", Completed: &done, CompletedAt: &later, Now: later})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, updated.CompletedAt.Equal(later))
	assert.Equal(t, "a", updated.Title)

	undone := false
	updated, err = repo.Update(ctx, repository.UpdateOptions{ID: "s1", Completed: &undone, Now: later})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)

	_, err = repo.Update(ctx, repository.UpdateOptions{ID: "missing", Completed: &done, Now: later})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "s1"), repository.ErrNotFound)
}

func TestRepository_SetOrdersIsIdempotent(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, repository.CreateOptions{ID: id, TaskID: "t1", Title: id, Order: i, Now: now})
		require.NoError(t, err)
	}

	orders := map[string]int{"c": 0, "a": 1, "b": 2}
	var snapshots [][]int
	for run := 0; run < 2; run++ {
		require.NoError(t, repo.SetOrders(ctx, "t1", orders, now))

		list, err := repo.ListByTask(ctx, "t1")
		require.NoError(t, err)
		var got []int
		ids := make([]string, len(list))
		for i, s := range list {
			ids[i] = s.ID
			got = append(got, s.Order)
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
		snapshots = append(snapshots, got)
	}
	assert.Equal(t, snapshots[0], snapshots[1])
}

func TestRepository_SetOrdersIgnoresOtherTasks(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Create(ctx, repository.CreateOptions{ID: "x", TaskID: "t2", Title: "x", Order: 7, Now: now})
	require.NoError(t, err)

	require.NoError(t, repo.SetOrders(ctx, "t1", map[string]int{"x": 0}, now))

	got, err := repo.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Order)
}

func TestRepository_CompleteAll(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, id := range []string{"a", "b"} {
		_, err := repo.Create(ctx, repository.CreateOptions{ID: id, TaskID: "t1", Title: id, Order: i, Now: now})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, repository.CreateOptions{ID: "other", TaskID: "t2", Title: "x", Now: now})
	require.NoError(t, err)

	require.NoError(t, repo.CompleteAll(ctx, "t1", now))

	list, err := repo.ListByTask(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.True(t, s.Completed, s.ID)
		assert.NotNil(t, s.CompletedAt)
	}

	other, err := repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, other.Completed)
}
