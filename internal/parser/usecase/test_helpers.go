package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/ratelimit"
)

// Mock logger for testing. Warnings are kept for assertions.
type mockLogger struct {
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warns = append(m.warns, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeGateway returns a canned model response.
type fakeGateway struct {
	unavailable bool
	response    string
	err         error
	calls       int
	lastPrompt  string
}

func (g *fakeGateway) Available() bool {
	return !g.unavailable
}

func (g *fakeGateway) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	return g.response, g.err
}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// newTestUseCase wires a UseCase around gw with a fresh limiter.
func newTestUseCase(t *testing.T, gw *fakeGateway, opts ...Option) (*implUseCase, *ratelimit.Limiter) {
	t.Helper()

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	limiter := ratelimit.New(60, time.Minute, ratelimit.WithClock(func() time.Time { return fixedNow }))

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	uc := New(&mockLogger{}, gw, limiter, dm, opts...).(*implUseCase)
	return uc, limiter
}
