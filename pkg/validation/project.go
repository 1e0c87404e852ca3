package validation

import (
	"fmt"
	"strings"
)

// ProjectMatcher resolves a free-text project name against known projects.
type ProjectMatcher interface {
	Match(name string, projects []Project) ValidationResult
}

// TieredMatcher applies, in order: exact match, token overlap, substring
// containment, no match.
//
// A token overlap is accepted while a full-string substring match is
// reported as invalid with hints. SubstringIsValid flips the latter so both
// tiers agree; it is off by default to keep existing behavior.
type TieredMatcher struct {
	SubstringIsValid bool
}

// DefaultProjectMatcher is used by ValidateProject.
var DefaultProjectMatcher ProjectMatcher = TieredMatcher{}

// ValidateProject matches name against projects with DefaultProjectMatcher.
func ValidateProject(name string, projects []Project) ValidationResult {
	return DefaultProjectMatcher.Match(name, projects)
}

// Match implements ProjectMatcher.
func (m TieredMatcher) Match(name string, projects []Project) ValidationResult {
	query := normalize(name)
	if query == "" {
		return invalid("Project name is empty", "The task will be created without a project")
	}

	// 1. Exact match.
	for _, p := range projects {
		if normalize(p.Name) == query {
			return ValidationResult{IsValid: true, CorrectedValue: p.Name}
		}
	}

	// 2. Token overlap.
	if qTokens := tokens(query); len(qTokens) > 0 {
		for _, p := range projects {
			if tokensOverlap(qTokens, tokens(normalize(p.Name))) {
				return ValidationResult{
					IsValid:        true,
					Suggestion:     fmt.Sprintf("Using project %q", p.Name),
					CorrectedValue: p.Name,
				}
			}
		}
	}

	// 3. Substring containment.
	var similar []string
	for _, p := range projects {
		candidate := normalize(p.Name)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			similar = append(similar, p.Name)
		}
	}
	if len(similar) > 0 {
		if m.SubstringIsValid {
			return ValidationResult{
				IsValid:        true,
				Suggestion:     fmt.Sprintf("Using project %q", similar[0]),
				CorrectedValue: similar[0],
			}
		}
		return invalid(
			fmt.Sprintf("Project %q not found", name),
			fmt.Sprintf("Did you mean: %s?", strings.Join(similar, ", ")),
		)
	}

	// 4. No match.
	return invalid(
		fmt.Sprintf("Project %q not found", name),
		"The task will be created without a project",
	)
}

// tokensOverlap reports whether every query token is a substring of some
// candidate token or vice versa.
func tokensOverlap(query, candidate []string) bool {
	if len(candidate) == 0 {
		return false
	}
	for _, q := range query {
		found := false
		for _, c := range candidate {
			if strings.Contains(c, q) || strings.Contains(q, c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
