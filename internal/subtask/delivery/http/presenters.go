package http

import (
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/subtask"
)

// --- Request DTOs ---

type createReq struct {
	TaskID string `json:"taskId" binding:"required"`
	Title  string `json:"title"  binding:"required,max=255"`
	Order  *int   `json:"order"  binding:"omitempty,min=0"`
}

func (r createReq) toInput() subtask.CreateInput {
	return subtask.CreateInput{TaskID: r.TaskID, Title: r.Title, Order: r.Order}
}

type updateReq struct {
	ID        string  `json:"-"`
	Title     *string `json:"title"     binding:"omitempty,max=255"`
	Completed *bool   `json:"completed"`
	Order     *int    `json:"order"     binding:"omitempty,min=0"`
}

func (r updateReq) toInput() subtask.UpdateInput {
	return subtask.UpdateInput{ID: r.ID, Title: r.Title, Completed: r.Completed, Order: r.Order}
}

type reorderReq struct {
	TaskID   string   `json:"-"`
	Subtasks []string `json:"subtasks" binding:"required"`
}

func (r reorderReq) toInput() subtask.ReorderInput {
	return subtask.ReorderInput{TaskID: r.TaskID, SubtaskIDs: r.Subtasks}
}

// --- Response DTOs ---

type subtaskResp struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func newSubtaskResp(s model.Subtask) subtaskResp {
	return subtaskResp{
		ID:          s.ID,
		TaskID:      s.TaskID,
		Title:       s.Title,
		Completed:   s.Completed,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		CompletedAt: s.CompletedAt,
	}
}

type listResp struct {
	Subtasks []subtaskResp `json:"subtasks"`
}

func newListResp(subtasks []model.Subtask) listResp {
	out := make([]subtaskResp, len(subtasks))
	for i, s := range subtasks {
		out[i] = newSubtaskResp(s)
	}
	return listResp{Subtasks: out}
}

type itemResp struct {
	Subtask subtaskResp `json:"subtask"`
}

func newItemResp(s model.Subtask) itemResp {
	return itemResp{Subtask: newSubtaskResp(s)}
}
