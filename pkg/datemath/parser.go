package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Parser converts relative date strings to absolute time.Time values.
// English and Portuguese expressions are understood.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	inDurationRe = regexp.MustCompile(`^(?:in|em|daqui a) (\d+) (day|days|week|weeks|month|months|dia|dias|semana|semanas|mes|meses|mês)$`)
	nextPrefixRe = regexp.MustCompile(`^(?:next|proxima|próxima|proximo|próximo) `)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"segunda":   time.Monday,
	"terca":     time.Tuesday,
	"terça":     time.Tuesday,
	"quarta":    time.Wednesday,
	"quinta":    time.Thursday,
	"sexta":     time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
	"domingo":   time.Sunday,
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.Join(strings.Fields(relative), " "))

	switch relative {
	case "today", "hoje":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "amanhã", "amanha":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "depois de amanhã", "depois de amanha":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday", "ontem":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if inDurationRe.MatchString(relative) || strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "em ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if loc := nextPrefixRe.FindStringIndex(relative); loc != nil {
		return p.parseNextWeekday(relative[loc[1]:], baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// fixedPhrases are the expressions Parse resolves without a pattern.
var fixedPhrases = map[string]struct{}{
	"today": {}, "hoje": {}, "tomorrow": {}, "amanhã": {}, "amanha": {},
	"day after tomorrow": {}, "depois de amanhã": {}, "depois de amanha": {},
	"yesterday": {}, "ontem": {},
}

// maxPhraseWords bounds the window Resolve slides over the text.
const maxPhraseWords = 4

// Resolve finds the first relative date expression inside free text and
// returns the day it refers to along with the matched phrase. A bare weekday
// ("sexta-feira") means its next occurrence.
func (p *Parser) Resolve(text string, baseTime time.Time) (time.Time, string, bool) {
	words := strings.Fields(strings.ToLower(text))
	for i := range words {
		words[i] = strings.TrimFunc(words[i], func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
		})
	}

	for start := range words {
		for n := min(maxPhraseWords, len(words)-start); n >= 1; n-- {
			phrase := strings.Join(words[start:start+n], " ")
			query, ok := resolvable(phrase)
			if !ok {
				continue
			}
			day, err := p.Parse(query, baseTime)
			if err != nil {
				continue
			}
			return day, phrase, true
		}
	}
	return time.Time{}, "", false
}

// resolvable reports whether Parse understands phrase, rewriting a bare
// weekday into its "next" form.
func resolvable(phrase string) (string, bool) {
	if _, ok := fixedPhrases[phrase]; ok {
		return phrase, true
	}
	if inDurationRe.MatchString(phrase) {
		return phrase, true
	}
	if loc := nextPrefixRe.FindStringIndex(phrase); loc != nil {
		_, ok := weekdays[strings.TrimSuffix(phrase[loc[1]:], "-feira")]
		return phrase, ok
	}
	if _, ok := weekdays[strings.TrimSuffix(phrase, "-feira")]; ok {
		return "next " + phrase, true
	}
	return "", false
}

// parseInDuration handles patterns like "in 3 days", "em 2 semanas", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "dia"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "semana"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"), strings.HasPrefix(unit, "m"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles the weekday part of "next friday" or "próxima sexta-feira".
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	dayName = strings.TrimSuffix(dayName, "-feira")
	dayName = strings.TrimSuffix(dayName, " feira")

	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Context builds the date anchors embedded in parsing prompts.
func (p *Parser) Context(now time.Time) DateContext {
	now = now.In(p.location)

	// Week boundaries are Monday-Sunday.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))

	return DateContext{
		Now:       now,
		Today:     now.Format(DateFormatISO),
		Weekday:   now.Weekday().String(),
		Tomorrow:  now.AddDate(0, 0, 1).Format(DateFormatISO),
		WeekStart: weekStart.Format(DateFormatISO),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format(DateFormatISO),
		Timezone:  p.location.String(),
	}
}
