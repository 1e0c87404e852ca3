package http

import (
	"smart-task-manager/internal/subtask"
	"smart-task-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc subtask.UseCase
}

// New creates a new HTTP handler for the subtask domain.
func New(l log.Logger, uc subtask.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
