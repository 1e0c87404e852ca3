package usecase

import (
	"time"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/datemath"
	pkgLog "smart-task-manager/pkg/log"
	"smart-task-manager/pkg/ratelimit"
	"smart-task-manager/pkg/validation"
)

type implUseCase struct {
	l        pkgLog.Logger
	gateway  parser.Gateway
	limiter  *ratelimit.Limiter
	dateMath *datemath.Parser
	matcher  validation.ProjectMatcher
	now      func() time.Time
}

// Option customizes the parser UseCase.
type Option func(*implUseCase)

// WithProjectMatcher replaces the default tiered project matcher.
func WithProjectMatcher(m validation.ProjectMatcher) Option {
	return func(uc *implUseCase) {
		uc.matcher = m
	}
}

// WithClock overrides the clock used for the prompt's date context.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new parser UseCase. The limiter is shared by every call
// that reaches the model, including subtask suggestions.
func New(
	l pkgLog.Logger,
	gateway parser.Gateway,
	limiter *ratelimit.Limiter,
	dateMath *datemath.Parser,
	opts ...Option,
) parser.UseCase {
	uc := &implUseCase{
		l:        l,
		gateway:  gateway,
		limiter:  limiter,
		dateMath: dateMath,
		matcher:  validation.DefaultProjectMatcher,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
