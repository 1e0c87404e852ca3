package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/gemini"
	"smart-task-manager/pkg/jsonextract"
)

// SuggestSubtasks asks the model for a short list of subtask titles.
func (uc *implUseCase) SuggestSubtasks(ctx context.Context, input parser.SuggestSubtasksInput) (parser.SuggestSubtasksOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return parser.SuggestSubtasksOutput{}, parser.ErrEmptyInput
	}

	if !uc.gateway.Available() {
		return parser.SuggestSubtasksOutput{}, parser.ErrModelUnavailable
	}

	if err := uc.limiter.CheckAndConsume(); err != nil {
		uc.logRateLimited(ctx, "SuggestSubtasks", err)
		return parser.SuggestSubtasksOutput{}, err
	}

	uc.l.Infof(ctx, "SuggestSubtasks: title_length=%d", len(title))

	raw, err := uc.gateway.Generate(ctx, gemini.BuildSubtaskPrompt(title, input.Description))
	if err != nil {
		return parser.SuggestSubtasksOutput{}, err
	}

	var items []any
	if err := jsonextract.ExtractInto(raw, jsonextract.ShapeArray, &items); err != nil {
		return parser.SuggestSubtasksOutput{}, err
	}

	subtasks := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return parser.SuggestSubtasksOutput{}, fmt.Errorf("%w: item %d is %T", parser.ErrInvalidSuggestionFormat, i, item)
		}
		if s = strings.TrimSpace(s); s != "" && len(subtasks) < MaxSubtaskSuggestions {
			subtasks = append(subtasks, s)
		}
	}

	if len(subtasks) == 0 {
		return parser.SuggestSubtasksOutput{}, fmt.Errorf("%w: no subtasks", parser.ErrInvalidSuggestionFormat)
	}

	return parser.SuggestSubtasksOutput{Subtasks: subtasks}, nil
}
