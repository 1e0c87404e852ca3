package parser

import "smart-task-manager/internal/model"

// Priority is a task priority, P1 being the most urgent.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// ParsedTask is a task candidate extracted from free text. It is transient:
// nothing in this package persists it.
type ParsedTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	ProjectName string   `json:"projectName,omitempty"`
}

// Outcome tags how a parse ended.
type Outcome string

const (
	// OutcomeSuccess: every extracted field is valid.
	OutcomeSuccess Outcome = "success"
	// OutcomeFailed: nothing usable was produced.
	OutcomeFailed Outcome = "failed"
	// OutcomePartial: the model answered but some fields were invalid and stripped.
	OutcomePartial Outcome = "partial"
	// OutcomeDegraded: the model call failed and the data is a heuristic guess from the raw input.
	OutcomeDegraded Outcome = "degraded"
)

// ParseTaskResult is the outcome of ParseTask. At most one of Data and
// PartialData is set; Suggestions are advisory only.
type ParseTaskResult struct {
	Outcome     Outcome     `json:"outcome"`
	Success     bool        `json:"success"`
	Data        *ParsedTask `json:"data,omitempty"`
	PartialData *ParsedTask `json:"partialData,omitempty"`
	Error       string      `json:"error,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// Succeeded builds a successful result.
func Succeeded(data ParsedTask, suggestions []string) ParseTaskResult {
	return ParseTaskResult{Outcome: OutcomeSuccess, Success: true, Data: &data, Suggestions: suggestions}
}

// Failed builds a failed result without data.
func Failed(err string, suggestions []string) ParseTaskResult {
	return ParseTaskResult{Outcome: OutcomeFailed, Error: err, Suggestions: suggestions}
}

// Partial builds a failed result carrying the fields that survived validation.
func Partial(err string, partial ParsedTask, suggestions []string) ParseTaskResult {
	return ParseTaskResult{Outcome: OutcomePartial, Error: err, PartialData: &partial, Suggestions: suggestions}
}

// Degraded builds a failed result whose data was synthesized from the raw input.
func Degraded(err string, guess ParsedTask, suggestions []string) ParseTaskResult {
	return ParseTaskResult{Outcome: OutcomeDegraded, Error: err, PartialData: &guess, Suggestions: suggestions}
}

// ParseTaskInput is the input for ParseTask.
type ParseTaskInput struct {
	Text     string
	Projects []model.Project // optional; enables project name validation
}

// SuggestSubtasksInput is the input for SuggestSubtasks.
type SuggestSubtasksInput struct {
	Title       string
	Description string
}

// SuggestSubtasksOutput holds the suggested subtask titles.
type SuggestSubtasksOutput struct {
	Subtasks []string `json:"subtasks"`
}
