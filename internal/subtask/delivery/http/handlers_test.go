package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/middleware"
	sqliteRepo "smart-task-manager/internal/subtask/repository/sqlite"
	"smart-task-manager/internal/subtask/usecase"
	"smart-task-manager/pkg/log"
	"smart-task-manager/pkg/sqlitedb"
)

const taskUUID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlitedb.Init(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	uc := usecase.New(log.NewNop(), sqliteRepo.New(db))
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func call(t *testing.T, r *gin.Engine, method, path, body string, out any) int {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return w.Code
}

func TestSubtaskLifecycle(t *testing.T) {
	r := setup(t)

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		var got itemResp
		code := call(t, r, http.MethodPost, "/api/v1/subtasks", `{"taskId":"`+taskUUID+`_2024-05-01","title":"`+title+`"}`, &got)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, taskUUID, got.Subtask.TaskID)
		ids = append(ids, got.Subtask.ID)
	}

	var done itemResp
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/api/v1/subtasks/"+ids[0]+"/complete", "", &done))
	assert.True(t, done.Subtask.Completed)
	assert.NotNil(t, done.Subtask.CompletedAt)

	var reordered listResp
	body := `{"subtasks":["` + ids[2] + `","` + ids[0] + `","` + ids[1] + `"]}`
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPut, "/api/v1/tasks/"+taskUUID+"/subtasks/order", body, &reordered))
	require.Len(t, reordered.Subtasks, 3)
	assert.Equal(t, ids[2], reordered.Subtasks[0].ID)

	var all listResp
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/api/v1/tasks/"+taskUUID+"/subtasks/complete-all", "", &all))
	for _, s := range all.Subtasks {
		assert.True(t, s.Completed)
	}

	require.Equal(t, http.StatusOK, call(t, r, http.MethodDelete, "/api/v1/subtasks/"+ids[1], "", nil))

	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodDelete, "/api/v1/subtasks/"+ids[1], "", nil))

	var list listResp
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/v1/tasks/"+taskUUID+"/subtasks", "", &list))
	assert.Len(t, list.Subtasks, 2)
}

func TestSubtaskErrors(t *testing.T) {
	r := setup(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{"invalid task id", http.MethodGet, "/api/v1/tasks/abc/subtasks", "", http.StatusBadRequest},
		{"missing title", http.MethodPost, "/api/v1/subtasks", `{"taskId":"` + taskUUID + `"}`, http.StatusBadRequest},
		{"unknown subtask", http.MethodPost, "/api/v1/subtasks/6f9619ff-8b86-d011-b42d-00c04fc964ff/complete", "", http.StatusNotFound},
		{"invalid subtask id", http.MethodPut, "/api/v1/subtasks/xyz", `{"title":"a"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, call(t, r, tt.method, tt.path, tt.body, nil))
		})
	}
}
