package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring"
	sqliteRepo "smart-task-manager/internal/recurring/repository/sqlite"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/sqlitedb"
)

const taskUUID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

var user = model.Scope{UserID: "6f9619ff-8b86-d011-b42d-00c04fc964ff"}

func setup(t *testing.T) *implUseCase {
	t.Helper()
	db, err := sqlitedb.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	uc := New(log.NewNop(), sqliteRepo.New(db)).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestComplete(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    recurring.CompleteInput
		wantDate string
		wantErr  error
	}{
		{name: "explicit date", input: recurring.CompleteInput{TaskID: taskUUID, InstanceDate: "2024-05-02"}, wantDate: "2024-05-02"},
		{name: "date from instance id", input: recurring.CompleteInput{TaskID: taskUUID + "_2024-05-03"}, wantDate: "2024-05-03"},
		// 1714867200000 is 2024-05-05T00:00:00Z.
		{name: "date from timestamp id", input: recurring.CompleteInput{TaskID: taskUUID + "_recurring_1714867200000"}, wantDate: "2024-05-05"},
		{name: "explicit date wins", input: recurring.CompleteInput{TaskID: taskUUID + "_2024-05-03", InstanceDate: "2024-05-04"}, wantDate: "2024-05-04"},
		{name: "plain id without date", input: recurring.CompleteInput{TaskID: taskUUID}, wantErr: recurring.ErrInvalidInstanceDate},
		{name: "impossible date", input: recurring.CompleteInput{TaskID: taskUUID, InstanceDate: "2024-02-30"}, wantErr: recurring.ErrInvalidInstanceDate},
		{name: "too far ahead", input: recurring.CompleteInput{TaskID: taskUUID, InstanceDate: "2040-01-01"}, wantErr: recurring.ErrInvalidInstanceDate},
		{name: "invalid task id", input: recurring.CompleteInput{TaskID: "abc_2024-05-01"}, wantErr: recurring.ErrInvalidTaskID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Complete(ctx, user, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, taskUUID, got.TaskID)
			assert.Equal(t, user.UserID, got.UserID)
			assert.Equal(t, tt.wantDate, got.InstanceDate)
		})
	}
}

func TestComplete_MissingUser(t *testing.T) {
	uc := setup(t)
	_, err := uc.Complete(context.Background(), model.Scope{}, recurring.CompleteInput{TaskID: taskUUID, InstanceDate: "2024-05-01"})
	assert.ErrorIs(t, err, recurring.ErrMissingUser)
}

func TestCompleteUncompleteList(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	for _, day := range []string{"2024-05-01", "2024-05-02", "2024-05-02", "2024-05-08"} {
		_, err := uc.Complete(ctx, user, recurring.CompleteInput{TaskID: taskUUID, InstanceDate: day})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx, user, recurring.ListInput{TaskID: taskUUID})
	require.NoError(t, err)
	assert.Len(t, list, 3, "completing the same day twice keeps one record")

	list, err = uc.List(ctx, user, recurring.ListInput{TaskID: taskUUID, From: "2024-05-02", To: "2024-05-07"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-05-02", list[0].InstanceDate)

	require.NoError(t, uc.Uncomplete(ctx, user, recurring.UncompleteInput{TaskID: taskUUID + "_2024-05-02"}))
	list, err = uc.List(ctx, user, recurring.ListInput{TaskID: taskUUID})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = uc.List(ctx, user, recurring.ListInput{TaskID: taskUUID, From: "2024-05-09", To: "2024-05-01"})
	assert.ErrorIs(t, err, recurring.ErrInvalidInstanceDate)

	other, err := uc.List(ctx, model.Scope{UserID: "00000000-0000-0000-0000-000000000001"}, recurring.ListInput{TaskID: taskUUID})
	require.NoError(t, err)
	assert.Empty(t, other)
}
