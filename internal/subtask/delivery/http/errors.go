package http

import (
	"errors"
	"net/http"

	"smart-task-manager/internal/subtask"
	pkgErrors "smart-task-manager/pkg/errors"
)

// mapError translates subtask errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, subtask.ErrInvalidTaskID),
		errors.Is(err, subtask.ErrInvalidSubtaskID),
		errors.Is(err, subtask.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, subtask.ErrSubtaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
