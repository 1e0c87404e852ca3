package http

import (
	"smart-task-manager/internal/recurring"
	"smart-task-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc recurring.UseCase
}

// New creates a new HTTP handler for the recurring completion domain.
func New(l log.Logger, uc recurring.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
