package usecase

import (
	"fmt"
	"strings"

	"smart-task-manager/internal/parser"
	"smart-task-manager/pkg/datemath"
)

// degradedResult guesses a task from the raw input when the model call
// itself failed, so callers still have something to pre-fill.
//
// Inputs mentioning a relative date keep only the first word as a
// placeholder title. The resolved day, when there is one, only appears in
// the suggestion; dueDate stays empty.
func (uc *implUseCase) degradedResult(text string) parser.ParseTaskResult {
	if !datemath.MentionsRelativeDate(text) {
		title, _ := truncateTitle(text)
		return parser.Degraded(errMsgDegraded, parser.ParsedTask{Title: title}, nil)
	}

	first := strings.Fields(text)[0]
	title, _ := truncateTitle(first)

	suggestion := suggestFullDate
	if day, phrase, ok := uc.dateMath.Resolve(text, uc.now()); ok {
		suggestion = fmt.Sprintf(suggestResolvedDate, phrase, day.Format(datemath.DateFormatISO))
	}
	return parser.Degraded(errMsgDegraded, parser.ParsedTask{Title: title}, []string{suggestion})
}
