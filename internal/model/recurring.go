package model

import "time"

// RecurringCompletion records that one occurrence of a recurring task was done.
// It is unique per (TaskID, UserID, InstanceDate).
type RecurringCompletion struct {
	ID           string
	TaskID       string
	UserID       string
	InstanceDate string // YYYY-MM-DD
	CompletedAt  time.Time
}
