// Package taskid decomposes recurring instance identifiers.
//
// A recurring task has one stored row but many occurrences. An occurrence is
// addressed as "<uuid>_recurring_<epoch-ms>" or "<uuid>_<YYYY-MM-DD>"; both
// resolve to the canonical UUID of the stored row.
package taskid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	recurringMarker = "_recurring_"
	dateLayout      = "2006-01-02"
)

// ErrInvalidTaskID is returned when the canonical part is not a UUID.
var ErrInvalidTaskID = errors.New("invalid task id")

// ID is a decomposed task identifier.
type ID struct {
	// Canonical is the UUID of the stored task row.
	Canonical string
	// Instance is the occurrence time; zero for plain IDs.
	Instance time.Time
	// Recurring reports whether the raw ID addressed an occurrence.
	Recurring bool
}

// InstanceDate returns the occurrence date as YYYY-MM-DD, or "" for plain IDs.
func (id ID) InstanceDate() string {
	if !id.Recurring {
		return ""
	}
	return id.Instance.Format(dateLayout)
}

// Parse decomposes raw into its canonical UUID and optional occurrence.
func Parse(raw string) (ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ID{}, fmt.Errorf("%w: empty", ErrInvalidTaskID)
	}

	if base, suffix, ok := strings.Cut(raw, recurringMarker); ok {
		ms, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("%w: bad occurrence timestamp %q", ErrInvalidTaskID, suffix)
		}
		canonical, err := canonicalUUID(base)
		if err != nil {
			return ID{}, err
		}
		return ID{Canonical: canonical, Instance: time.UnixMilli(ms).UTC(), Recurring: true}, nil
	}

	// A UUID is 36 chars; "<uuid>_<YYYY-MM-DD>" is 36+1+10.
	if len(raw) == 47 && raw[36] == '_' {
		day, err := time.Parse(dateLayout, raw[37:])
		if err != nil {
			return ID{}, fmt.Errorf("%w: bad occurrence date %q", ErrInvalidTaskID, raw[37:])
		}
		canonical, err := canonicalUUID(raw[:36])
		if err != nil {
			return ID{}, err
		}
		return ID{Canonical: canonical, Instance: day, Recurring: true}, nil
	}

	canonical, err := canonicalUUID(raw)
	if err != nil {
		return ID{}, err
	}
	return ID{Canonical: canonical}, nil
}

// Canonical is a shorthand for Parse(raw).Canonical.
func Canonical(raw string) (string, error) {
	id, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return id.Canonical, nil
}

// InstanceID builds the date-form occurrence ID for a canonical task.
func InstanceID(canonical string, day time.Time) string {
	return canonical + "_" + day.Format(dateLayout)
}

func canonicalUUID(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a UUID", ErrInvalidTaskID, s)
	}
	return u.String(), nil
}
