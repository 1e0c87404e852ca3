package http

import (
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/parser"
	pkgErrors "smart-task-manager/pkg/errors"
)

// --- Request DTOs ---

type projectReq struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

type parseReq struct {
	Input    string       `json:"input"    binding:"required,max=2000"`
	Projects []projectReq `json:"projects" binding:"omitempty,max=200,dive"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return pkgErrors.NewHTTPError(400, "input is required")
	}
	return nil
}

func (r parseReq) toInput() parser.ParseTaskInput {
	projects := make([]model.Project, len(r.Projects))
	for i, p := range r.Projects {
		projects[i] = model.Project{ID: p.ID, Name: p.Name}
	}
	return parser.ParseTaskInput{Text: r.Input, Projects: projects}
}

// ---

type suggestReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

func (r suggestReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return pkgErrors.NewHTTPError(400, "title is required")
	}
	return nil
}

func (r suggestReq) toInput() parser.SuggestSubtasksInput {
	return parser.SuggestSubtasksInput{Title: r.Title, Description: r.Description}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority,omitempty"`
	ProjectName string `json:"projectName,omitempty"`
}

func newParsedTaskResp(t *parser.ParsedTask) *parsedTaskResp {
	if t == nil {
		return nil
	}
	return &parsedTaskResp{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		ProjectName: t.ProjectName,
	}
}

type parseResp struct {
	Outcome     string          `json:"outcome"`
	Success     bool            `json:"success"`
	Data        *parsedTaskResp `json:"data,omitempty"`
	PartialData *parsedTaskResp `json:"partialData,omitempty"`
	Error       string          `json:"error,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

func (h *handler) newParseResp(res parser.ParseTaskResult) parseResp {
	return parseResp{
		Outcome:     string(res.Outcome),
		Success:     res.Success,
		Data:        newParsedTaskResp(res.Data),
		PartialData: newParsedTaskResp(res.PartialData),
		Error:       res.Error,
		Suggestions: res.Suggestions,
	}
}

type suggestResp struct {
	Subtasks []string `json:"subtasks"`
}

func (h *handler) newSuggestResp(out parser.SuggestSubtasksOutput) suggestResp {
	return suggestResp{Subtasks: out.Subtasks}
}
