package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/recurring"
	"smart-task-manager/pkg/response"
)

// Complete godoc
// @Summary     Complete one occurrence of a recurring task
// @Description Upserts the record for (task, user, instance_date). The date may come from a "<uuid>_<YYYY-MM-DD>" task id.
// @Tags        Recurring
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true  "User UUID"
// @Param       taskId    path   string      true  "Task id or recurring instance id"
// @Param       body      body   completeReq false "Instance date"
// @Success     200 {object} completionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/{taskId}/completions [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(ctx)

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	completion, err := h.uc.Complete(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCompletionResp(completion))
}

// Uncomplete godoc
// @Summary     Reopen one occurrence of a recurring task
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true "User UUID"
// @Param       taskId    path   string true "Task id or recurring instance id"
// @Param       date      path   string true "Instance date (YYYY-MM-DD)"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{taskId}/completions/{date} [DELETE]
func (h *handler) Uncomplete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(ctx)

	input := recurring.UncompleteInput{TaskID: c.Param("taskId"), InstanceDate: c.Param("date")}
	if err := h.uc.Uncomplete(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "uc.Uncomplete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// List godoc
// @Summary     List completed occurrences of a recurring task
// @Tags        Recurring
// @Produce     json
// @Param       X-User-ID header string true  "User UUID"
// @Param       taskId    path   string true  "Task id or recurring instance id"
// @Param       from      query  string false "First date (YYYY-MM-DD)"
// @Param       to        query  string false "Last date (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{taskId}/completions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(ctx)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	list, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(list))
}
