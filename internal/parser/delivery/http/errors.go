package http

import (
	"errors"
	"net/http"

	"smart-task-manager/internal/parser"
	pkgErrors "smart-task-manager/pkg/errors"
)

// mapError translates parser errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, parser.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, parser.ErrRateLimitExceeded):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, parser.ErrModelUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, parser.ErrGenerationFailed),
		errors.Is(err, parser.ErrNoJSONFound),
		errors.Is(err, parser.ErrMalformedJSON),
		errors.Is(err, parser.ErrInvalidSuggestionFormat):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
