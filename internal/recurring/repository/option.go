package repository

// DeleteOptions identifies one completion record.
type DeleteOptions struct {
	TaskID       string
	UserID       string
	InstanceDate string
}

// ListOptions filters completions; From and To are inclusive YYYY-MM-DD
// bounds and may be empty.
type ListOptions struct {
	TaskID string
	UserID string
	From   string
	To     string
}
