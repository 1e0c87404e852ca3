package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring/repository"
	"smart-task-manager/pkg/sqlitedb"
)

func setup(t *testing.T) repository.Repository {
	t.Helper()
	db, err := sqlitedb.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestRepository_UpsertIsKeyedByTaskUserDate(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	first := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(3 * time.Hour)

	c1, err := repo.Upsert(ctx, model.RecurringCompletion{ID: "c1", TaskID: "t", UserID: "u", InstanceDate: "2024-05-01", CompletedAt: first})
	require.NoError(t, err)

	c2, err := repo.Upsert(ctx, model.RecurringCompletion{ID: "c2", TaskID: "t", UserID: "u", InstanceDate: "2024-05-01", CompletedAt: second})
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID, "second upsert must update the existing record")
	assert.True(t, c2.CompletedAt.Equal(second))

	// Another user completing the same occurrence gets its own record.
	_, err = repo.Upsert(ctx, model.RecurringCompletion{ID: "c3", TaskID: "t", UserID: "other", InstanceDate: "2024-05-01", CompletedAt: first})
	require.NoError(t, err)

	list, err := repo.List(ctx, repository.ListOptions{TaskID: "t", UserID: "u"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_ListRangeAndDelete(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, day := range []string{"2024-05-03", "2024-05-01", "2024-05-10"} {
		_, err := repo.Upsert(ctx, model.RecurringCompletion{ID: string(rune('a' + i)), TaskID: "t", UserID: "u", InstanceDate: day, CompletedAt: now})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, repository.ListOptions{TaskID: "t", UserID: "u", From: "2024-05-01", To: "2024-05-05"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-05-01", list[0].InstanceDate)
	assert.Equal(t, "2024-05-03", list[1].InstanceDate)

	require.NoError(t, repo.Delete(ctx, repository.DeleteOptions{TaskID: "t", UserID: "u", InstanceDate: "2024-05-03"}))
	// Deleting twice is fine.
	require.NoError(t, repo.Delete(ctx, repository.DeleteOptions{TaskID: "t", UserID: "u", InstanceDate: "2024-05-03"}))

	list, err = repo.List(ctx, repository.ListOptions{TaskID: "t", UserID: "u"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
