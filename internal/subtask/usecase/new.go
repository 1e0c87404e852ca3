package usecase

import (
	"time"

	"smart-task-manager/internal/subtask"
	"smart-task-manager/internal/subtask/repository"
	pkgLog "smart-task-manager/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new subtask UseCase.
func New(l pkgLog.Logger, repo repository.Repository) subtask.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
