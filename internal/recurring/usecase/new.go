package usecase

import (
	"time"

	"smart-task-manager/internal/recurring"
	"smart-task-manager/internal/recurring/repository"
	pkgLog "smart-task-manager/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new recurring completion UseCase.
func New(l pkgLog.Logger, repo repository.Repository) recurring.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
