package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/validation"
)

// logRateLimited records a limiter rejection with the window it hit.
func (uc *implUseCase) logRateLimited(ctx context.Context, op string, err error) {
	uc.l.Warnf(ctx, "%s: %v (limit=%d resets_at=%s)", op, err, uc.limiter.Limit(), uc.limiter.ResetAt().Format(time.RFC3339))
}

// stringField returns fields[key] trimmed, and whether it was a string.
func stringField(fields map[string]any, key string) (string, bool) {
	s, ok := fields[key].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// truncateTitle cuts title to MaxTitleLength runes.
func truncateTitle(title string) (string, bool) {
	if utf8.RuneCountInString(title) <= MaxTitleLength {
		return title, false
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:MaxTitleLength])), true
}

// normalizePriority accepts "P1".."P4" in any case, bare digits and numbers.
func normalizePriority(v any) (parser.Priority, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.ToUpper(strings.TrimSpace(t))
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "", false
	}

	if !strings.HasPrefix(s, "P") {
		s = "P" + s
	}
	switch p := parser.Priority(s); p {
	case parser.PriorityP1, parser.PriorityP2, parser.PriorityP3, parser.PriorityP4:
		return p, true
	}
	return "", false
}

func projectNames(projects []model.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

func toValidationProjects(projects []model.Project) []validation.Project {
	out := make([]validation.Project, len(projects))
	for i, p := range projects {
		out[i] = validation.Project{ID: p.ID, Name: p.Name}
	}
	return out
}
