package parser

import (
	"errors"

	"smart-task-manager/pkg/jsonextract"
	"smart-task-manager/pkg/ratelimit"
)

// Domain-specific errors for the parser package.
var (
	ErrEmptyInput              = errors.New("input text is empty")
	ErrModelUnavailable        = errors.New("model unavailable")
	ErrGenerationFailed        = errors.New("model generation failed")
	ErrMissingTitle            = errors.New("could not identify a task title")
	ErrInvalidSuggestionFormat = errors.New("model returned subtasks in an invalid format")
	ErrInvalidField            = errors.New("invalid field")

	ErrRateLimitExceeded = ratelimit.ErrRateLimitExceeded
	ErrNoJSONFound       = jsonextract.ErrNoJSONFound
	ErrMalformedJSON     = jsonextract.ErrMalformedJSON
)
