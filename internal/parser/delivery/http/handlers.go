package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/pkg/response"
)

// Parse godoc
// @Summary     Parse a task from natural language
// @Description Extracts title, due date, priority and project from free text.
// @Description Failed, partial and degraded outcomes are still returned with status 200.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free text and optional project list"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result := h.uc.ParseTask(ctx, req.toInput())
	response.OK(c, h.newParseResp(result))
}

// SuggestSubtasks godoc
// @Summary     Suggest subtasks for a task
// @Description Asks the model for up to five subtask titles.
// @Tags        Parser
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Task title and description"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Model returned an unusable answer"
// @Failure     503  {object} response.Resp "Model unavailable"
// @Router      /api/v1/tasks/suggest-subtasks [POST]
func (h *handler) SuggestSubtasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestSubtasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestSubtasks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}
