package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/pkg/response"
)

// List godoc
// @Summary     List subtasks of a task
// @Tags        Subtask
// @Produce     json
// @Param       taskId path string true "Task id or recurring instance id"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{taskId}/subtasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	subtasks, err := h.uc.List(ctx, c.Param("taskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(subtasks))
}

// Create godoc
// @Summary     Create a subtask
// @Description Appends the subtask after the last one when no order is given.
// @Tags        Subtask
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Subtask data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/subtasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(created))
}

// Update godoc
// @Summary     Update a subtask
// @Description Partial update; omitted fields are left unchanged.
// @Tags        Subtask
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Subtask ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subtasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(updated))
}

// Delete godoc
// @Summary     Delete a subtask
// @Tags        Subtask
// @Produce     json
// @Param       id path string true "Subtask ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/subtasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Mark a subtask completed
// @Tags        Subtask
// @Produce     json
// @Param       id path string true "Subtask ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subtasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Complete(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(s))
}

// Uncomplete godoc
// @Summary     Reopen a subtask
// @Tags        Subtask
// @Produce     json
// @Param       id path string true "Subtask ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subtasks/{id}/uncomplete [POST]
func (h *handler) Uncomplete(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Uncomplete(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Uncomplete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(s))
}

// Reorder godoc
// @Summary     Reorder the subtasks of a task
// @Description The position of each id in the list becomes its order.
// @Tags        Subtask
// @Accept      json
// @Produce     json
// @Param       taskId path string     true "Task id or recurring instance id"
// @Param       body   body reorderReq true "Subtask ids in their new order"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{taskId}/subtasks/order [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	subtasks, err := h.uc.Reorder(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reorder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(subtasks))
}

// CompleteAll godoc
// @Summary     Complete every subtask of a task
// @Tags        Subtask
// @Produce     json
// @Param       taskId path string true "Task id or recurring instance id"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{taskId}/subtasks/complete-all [POST]
func (h *handler) CompleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	subtasks, err := h.uc.CompleteAll(ctx, c.Param("taskId"))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(subtasks))
}
