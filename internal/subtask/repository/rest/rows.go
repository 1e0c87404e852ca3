package rest

import (
	"time"

	"smart-task-manager/internal/model"
)

const table = "subtasks"

// subtaskRow is the snake_case wire form of a subtask.
type subtaskRow struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (r subtaskRow) toModel() model.Subtask {
	return model.Subtask{
		ID:          r.ID,
		TaskID:      r.TaskID,
		Title:       r.Title,
		Completed:   r.Completed,
		Order:       r.Order,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CompletedAt: r.CompletedAt,
	}
}

func toModels(rows []subtaskRow) []model.Subtask {
	out := make([]model.Subtask, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out
}
