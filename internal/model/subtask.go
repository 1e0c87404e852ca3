package model

import "time"

// Subtask is one checklist step of a task.
type Subtask struct {
	ID          string
	TaskID      string // canonical task UUID
	Title       string
	Completed   bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}
