package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/pkg/backend"
)

type row struct {
	ID     string `json:"id"`
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
}

func TestClient(t *testing.T) {
	var (
		mu      sync.Mutex
		lastReq *http.Request
	)
	last := func() *http.Request {
		mu.Lock()
		defer mu.Unlock()
		return lastReq
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var lastBody json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&lastBody)
		mu.Lock()
		lastReq = r.Clone(context.Background())
		mu.Unlock()

		if r.Header.Get("apikey") != "secret" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/rest/v1/subtasks" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("task_id") == "eq.boom" {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"boom"}`))
				return
			}
			json.NewEncoder(w).Encode([]row{{ID: "1", TaskID: "t", Title: "a"}})
		case http.MethodPost, http.MethodPatch:
			var in row
			_ = json.Unmarshal(lastBody, &in)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]row{in})
		case http.MethodDelete:
			if r.Header.Get("Prefer") == "return=representation" {
				json.NewEncoder(w).Encode([]row{{ID: "2", TaskID: "t", Title: "c"}})
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer ts.Close()

	client, err := backend.New(ts.URL+"/", "secret")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Select", func(t *testing.T) {
		var rows []row
		err := client.Select(ctx, "subtasks", url.Values{"task_id": {backend.Eq("t")}}, &rows)
		require.NoError(t, err)
		assert.Equal(t, []row{{ID: "1", TaskID: "t", Title: "a"}}, rows)
		assert.Equal(t, "eq.t", last().URL.Query().Get("task_id"))
	})

	t.Run("Select error", func(t *testing.T) {
		var rows []row
		err := client.Select(ctx, "subtasks", url.Values{"task_id": {backend.Eq("boom")}}, &rows)
		var apiErr *backend.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})

	t.Run("Insert", func(t *testing.T) {
		var rows []row
		err := client.Insert(ctx, "subtasks", row{ID: "2", TaskID: "t", Title: "b"}, &rows)
		require.NoError(t, err)
		assert.Equal(t, "b", rows[0].Title)
		assert.Equal(t, "return=representation", last().Header.Get("Prefer"))
	})

	t.Run("Upsert", func(t *testing.T) {
		var rows []row
		err := client.Upsert(ctx, "subtasks", row{ID: "2"}, "id", &rows)
		require.NoError(t, err)
		assert.Equal(t, "id", last().URL.Query().Get("on_conflict"))
		assert.Contains(t, last().Header.Get("Prefer"), "merge-duplicates")
	})

	t.Run("Update", func(t *testing.T) {
		var rows []row
		err := client.Update(ctx, "subtasks", url.Values{"id": {backend.Eq("2")}}, map[string]any{"title": "c"}, &rows)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, last().Method)
		assert.Equal(t, "c", rows[0].Title)
	})

	t.Run("Delete", func(t *testing.T) {
		err := client.Delete(ctx, "subtasks", url.Values{"id": {backend.Eq("2")}}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, last().Method)
		assert.Empty(t, last().Header.Get("Prefer"))

		var rows []row
		err = client.Delete(ctx, "subtasks", url.Values{"id": {backend.Eq("2")}}, &rows)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0].ID)
	})
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := backend.New("  ", "key")
	assert.ErrorIs(t, err, backend.ErrNotConfigured)
}
