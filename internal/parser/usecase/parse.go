package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/gemini"
	"smart-task-manager/pkg/jsonextract"
	"smart-task-manager/pkg/validation"
)

// ParseTask turns free text into a task candidate. It never returns a Go
// error: every failure is carried by the result.
func (uc *implUseCase) ParseTask(ctx context.Context, input parser.ParseTaskInput) parser.ParseTaskResult {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return parser.Failed(parser.ErrEmptyInput.Error(), []string{suggestAddClearTitle})
	}

	// Availability is checked first so a missing model never spends limiter budget.
	if !uc.gateway.Available() {
		return parser.Failed(parser.ErrModelUnavailable.Error(), nil)
	}

	if err := uc.limiter.CheckAndConsume(); err != nil {
		uc.logRateLimited(ctx, "ParseTask", err)
		return parser.Failed(err.Error(), []string{suggestTryAgainLater})
	}

	uc.l.Infof(ctx, "ParseTask: input_length=%d projects=%d", len(text), len(input.Projects))

	prompt := gemini.BuildTaskParsingPrompt(text, uc.dateMath.Context(uc.now()), projectNames(input.Projects))
	raw, err := uc.gateway.Generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "ParseTask: falling back to heuristic extraction: %v", err)
		return uc.degradedResult(text)
	}

	fields := map[string]any{}
	if err := jsonextract.ExtractInto(raw, jsonextract.ShapeObject, &fields); err != nil {
		uc.l.Warnf(ctx, "ParseTask: %v", err)
		return parser.Failed(err.Error(), []string{suggestBeMoreSpecific})
	}

	title, ok := stringField(fields, "title")
	if !ok || title == "" {
		return parser.Failed(parser.ErrMissingTitle.Error(), []string{suggestAddClearTitle})
	}

	var (
		errs        []string
		suggestions []string
	)
	addSuggestion := func(s string) {
		if s != "" {
			suggestions = append(suggestions, s)
		}
	}

	candidate := parser.ParsedTask{Title: title}
	if shortened, cut := truncateTitle(title); cut {
		candidate.Title = shortened
		addSuggestion(suggestTitleShortened)
	}
	candidate.Description, _ = stringField(fields, "description")

	if v, present := fields["dueDate"]; present && v != nil {
		due, _ := v.(string)
		res := validation.ValidateDateTime(due)
		if res.IsValid {
			candidate.DueDate = strings.TrimSpace(due)
		} else {
			errs = append(errs, res.Error)
			addSuggestion(res.Suggestion)
		}
	}

	if v, present := fields["priority"]; present && v != nil {
		if p, ok := normalizePriority(v); ok {
			candidate.Priority = p
		} else {
			addSuggestion(suggestUnknownPrior)
		}
	}

	if name, ok := stringField(fields, "projectName"); ok && name != "" {
		if len(input.Projects) == 0 {
			candidate.ProjectName = name
		} else {
			res := uc.matcher.Match(name, toValidationProjects(input.Projects))
			if res.IsValid {
				candidate.ProjectName = name
				if res.CorrectedValue != "" {
					candidate.ProjectName = res.CorrectedValue
				}
				addSuggestion(res.Suggestion)
			} else {
				errs = append(errs, res.Error)
				addSuggestion(res.Suggestion)
			}
		}
	}

	if len(errs) > 0 {
		uc.l.Infof(ctx, "ParseTask: partial result, %d invalid field(s)", len(errs))
		return parser.Partial(strings.Join(errs, "; "), candidate, suggestions)
	}

	return parser.Succeeded(candidate, suggestions)
}
