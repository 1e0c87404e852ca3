package repository

import "time"

// CreateOptions holds the parameters for storing a new subtask.
type CreateOptions struct {
	ID     string
	TaskID string
	Title  string
	Order  int
	Now    time.Time
}

// UpdateOptions holds a partial update. When Completed is set, CompletedAt
// is stored alongside it (nil clears it).
type UpdateOptions struct {
	ID          string
	Title       *string
	Order       *int
	Completed   *bool
	CompletedAt *time.Time
	Now         time.Time
}
