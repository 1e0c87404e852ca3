package recurring

// CompleteInput identifies one occurrence. InstanceDate may be empty when
// TaskID is a "<uuid>_<YYYY-MM-DD>" or "<uuid>_recurring_<ms>" instance id.
type CompleteInput struct {
	TaskID       string
	InstanceDate string
}

// UncompleteInput identifies the occurrence to reopen.
type UncompleteInput struct {
	TaskID       string
	InstanceDate string
}

// ListInput filters completions of a task by an inclusive date range.
// Empty bounds are open.
type ListInput struct {
	TaskID string
	From   string
	To     string
}
