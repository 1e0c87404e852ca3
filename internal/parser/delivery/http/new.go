package http

import (
	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/log"
)

type handler struct {
	l  log.Logger
	uc parser.UseCase
}

// New creates a new HTTP handler for the parser domain.
func New(l log.Logger, uc parser.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
