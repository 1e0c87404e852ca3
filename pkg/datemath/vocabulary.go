package datemath

import (
	"strings"
	"unicode"
)

// relativeWords are single words that signal a relative date expression.
var relativeWords = map[string]struct{}{
	"today": {}, "tomorrow": {}, "yesterday": {}, "tonight": {}, "next": {}, "week": {}, "weekend": {},
	"hoje": {}, "amanhã": {}, "amanha": {}, "ontem": {}, "depois": {}, "próxima": {}, "proxima": {},
	"próximo": {}, "proximo": {}, "semana": {}, "mês": {}, "mes": {}, "fim": {},
}

// MentionsRelativeDate reports whether text contains a relative date word or
// a weekday name.
func MentionsRelativeDate(text string) bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	for _, w := range words {
		w = strings.TrimSuffix(w, "-feira")
		if _, ok := relativeWords[w]; ok {
			return true
		}
		if _, ok := weekdays[w]; ok {
			return true
		}
	}
	return false
}
