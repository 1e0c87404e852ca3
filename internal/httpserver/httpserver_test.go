package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/log"
)

type stubParser struct{}

func (stubParser) ParseTask(_ context.Context, in parser.ParseTaskInput) parser.ParseTaskResult {
	return parser.Succeeded(parser.ParsedTask{Title: in.Text}, nil)
}

func (stubParser) SuggestSubtasks(context.Context, parser.SuggestSubtasksInput) (parser.SuggestSubtasksOutput, error) {
	return parser.SuggestSubtasksOutput{}, parser.ErrModelUnavailable
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		Middleware:  middleware.New(l, 0),
		ParserUC:    stubParser{},
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()

	_, err := New(l, Config{Logger: l, Mode: "test", ParserUC: stubParser{}})
	assert.ErrorContains(t, err, "port")

	_, err = New(l, Config{Logger: l, Mode: "test", Port: 8080})
	assert.ErrorContains(t, err, "parser")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), ServiceName)
		})
	}
}

func TestParserRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/parse", strings.NewReader(`{"input":"Buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Buy milk"`)
}

func TestOptionalDomainsSkipped(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc/subtasks", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadyCheck_ReportsDomains(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"domains":{"completions":false,"parser":true,"subtasks":false}`)
}
