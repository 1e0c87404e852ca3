package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopwords are Portuguese connectives ignored by token matching.
var stopwords = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"em": {}, "na": {}, "no": {}, "nas": {}, "nos": {},
}

// projectPrefixes are leading words users put in front of a project name.
var projectPrefixes = []string{"projeto", "project", "proj"}

// minTokenLen is the shortest token that takes part in token overlap.
// Shorter tokens still count for exact and substring matches.
const minTokenLen = 2

// normalize lowercases, strips accents, collapses whitespace, and removes a
// leading "projeto"/"project" word when something remains after it.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = foldAccents(s)
	s = strings.Join(strings.Fields(s), " ")

	for _, prefix := range projectPrefixes {
		rest, ok := strings.CutPrefix(s, prefix+" ")
		if ok && strings.TrimSpace(rest) != "" {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// tokens splits an already-normalized string into significant words.
func tokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopwords[f]; stop {
			continue
		}
		if len([]rune(f)) < minTokenLen {
			continue
		}
		out = append(out, f)
	}
	return out
}
