package parser

import "context"

// UseCase turns free text into structured task data.
type UseCase interface {
	// ParseTask never returns a Go error: every failure is reported inside
	// the result so the caller can always pre-fill something.
	ParseTask(ctx context.Context, input ParseTaskInput) ParseTaskResult

	// SuggestSubtasks is all-or-nothing: no partial result on failure.
	SuggestSubtasks(ctx context.Context, input SuggestSubtasksInput) (SuggestSubtasksOutput, error)
}

// Gateway is a single request/response call to the generative model.
type Gateway interface {
	// Available reports whether a model is configured. It must be checked
	// before consuming rate-limit budget.
	Available() bool

	// Generate returns the raw model text. It does not retry.
	Generate(ctx context.Context, prompt string) (string, error)
}
