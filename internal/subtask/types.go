package subtask

// CreateInput is the input for creating a subtask. A nil Order appends it
// after the current last subtask.
type CreateInput struct {
	TaskID string
	Title  string
	Order  *int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID        string
	Title     *string
	Completed *bool
	Order     *int
}

// ReorderInput lists every subtask of TaskID in its new order.
type ReorderInput struct {
	TaskID     string
	SubtaskIDs []string
}
