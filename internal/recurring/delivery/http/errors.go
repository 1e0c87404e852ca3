package http

import (
	"errors"
	"net/http"

	"smart-task-manager/internal/recurring"
	pkgErrors "smart-task-manager/pkg/errors"
)

// mapError translates recurring errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recurring.ErrInvalidTaskID),
		errors.Is(err, recurring.ErrInvalidInstanceDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, recurring.ErrMissingUser):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
