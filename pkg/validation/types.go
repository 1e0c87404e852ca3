// Package validation checks and repairs individual fields of a parsed task.
// Every validator is pure: it returns a fresh ValidationResult and never
// mutates its input.
package validation

// ValidationResult is the verdict on one field.
type ValidationResult struct {
	IsValid        bool   `json:"isValid"`
	Error          string `json:"error,omitempty"`
	Suggestion     string `json:"suggestion,omitempty"`
	CorrectedValue string `json:"correctedValue,omitempty"`
}

// Project is a candidate the project name is matched against.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

func invalid(err, suggestion string) ValidationResult {
	return ValidationResult{IsValid: false, Error: err, Suggestion: suggestion}
}
