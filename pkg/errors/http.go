package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements error.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose code equals the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)

// AsHTTPError unwraps err into an HTTPError, if it carries one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
