package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxDateDistanceYears = 10

var dateTimePattern = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?)?(Z|[+-]\d{2}:?\d{2})?$`,
)

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

type dateParts struct {
	year, month, day     int
	hour, minute, second int
	nanos                int
	loc                  *time.Location
}

// ValidateDateTime checks that s names a real calendar instant.
//
// The components are rebuilt into a time.Time and compared back, so values
// that a lenient parser would silently normalize (Feb 30, hour 24, month 13)
// are rejected. No range bound is applied.
func ValidateDateTime(s string) ValidationResult {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalid("Date is empty", "Provide a date like 2024-05-01T14:30:00")
	}

	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return invalid(fmt.Sprintf("Invalid date format: %q", s), "Provide a date like 2024-05-01T14:30:00")
	}

	p := dateParts{
		year:   atoi(m[1]),
		month:  atoi(m[2]),
		day:    atoi(m[3]),
		hour:   atoi(m[4]),
		minute: atoi(m[5]),
		second: atoi(m[6]),
		nanos:  fraction(m[7]),
		loc:    zone(m[8]),
	}

	if !p.roundTrips() {
		return invalid(fmt.Sprintf("Date does not exist: %q", s), "Check the day of the month and the time")
	}
	return valid()
}

// ValidateDate checks a date-only YYYY-MM-DD string and rejects dates more
// than ten years before or after now.
func ValidateDate(s string, now time.Time) ValidationResult {
	s = strings.TrimSpace(s)
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return invalid(fmt.Sprintf("Invalid date format: %q", s), "Use the format YYYY-MM-DD")
	}

	p := dateParts{year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3]), loc: time.UTC}
	if !p.roundTrips() {
		return invalid(fmt.Sprintf("Date does not exist: %q", s), "Check the day of the month")
	}

	t := p.time()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case t.Before(today.AddDate(-maxDateDistanceYears, 0, 0)):
		return invalid("Date is too far in the past", fmt.Sprintf("Use a date within %d years of today", maxDateDistanceYears))
	case t.After(today.AddDate(maxDateDistanceYears, 0, 0)):
		return invalid("Date is too far in the future", fmt.Sprintf("Use a date within %d years of today", maxDateDistanceYears))
	}
	return valid()
}

func (p dateParts) time() time.Time {
	return time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, p.nanos, p.loc)
}

func (p dateParts) roundTrips() bool {
	t := p.time()
	return t.Year() == p.year &&
		int(t.Month()) == p.month &&
		t.Day() == p.day &&
		t.Hour() == p.hour &&
		t.Minute() == p.minute &&
		t.Second() == p.second
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

// fraction converts up to nine fractional-second digits to nanoseconds.
func fraction(s string) int {
	if s == "" {
		return 0
	}
	s = (s + "000000000")[:9]
	return atoi(s)
}

func zone(s string) *time.Location {
	if s == "" || s == "Z" {
		return time.UTC
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	hours := atoi(digits[:2])
	minutes := atoi(digits[2:])
	return time.FixedZone(s, sign*(hours*3600+minutes*60))
}
