package http

import (
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/recurring"
	"smart-task-manager/pkg/taskid"
)

// --- Request DTOs ---

type completeReq struct {
	TaskID       string `json:"-"`
	InstanceDate string `json:"instance_date"`
}

func (r completeReq) toInput() recurring.CompleteInput {
	return recurring.CompleteInput{TaskID: r.TaskID, InstanceDate: r.InstanceDate}
}

type listReq struct {
	TaskID string `form:"-"`
	From   string `form:"from"`
	To     string `form:"to"`
}

func (r listReq) toInput() recurring.ListInput {
	return recurring.ListInput{TaskID: r.TaskID, From: r.From, To: r.To}
}

// --- Response DTOs ---

type completionResp struct {
	ID           string    `json:"id"`
	TaskID       string    `json:"task_id"`
	InstanceID   string    `json:"instance_id,omitempty"`
	UserID       string    `json:"user_id"`
	InstanceDate string    `json:"instance_date"`
	CompletedAt  time.Time `json:"completed_at"`
}

// newCompletionResp also returns the occurrence's instance id, which the
// subtask and completion routes accept in place of the task id.
func newCompletionResp(c model.RecurringCompletion) completionResp {
	resp := completionResp{
		ID:           c.ID,
		TaskID:       c.TaskID,
		UserID:       c.UserID,
		InstanceDate: c.InstanceDate,
		CompletedAt:  c.CompletedAt,
	}
	if day, err := time.Parse(time.DateOnly, c.InstanceDate); err == nil {
		resp.InstanceID = taskid.InstanceID(c.TaskID, day)
	}
	return resp
}

type listResp struct {
	Completions []completionResp `json:"completions"`
}

func newListResp(list []model.RecurringCompletion) listResp {
	out := make([]completionResp, len(list))
	for i, c := range list {
		out[i] = newCompletionResp(c)
	}
	return listResp{Completions: out}
}
