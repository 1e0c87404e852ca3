package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create subtask request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processUpdateReq binds the update body and the :id path param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}

// processReorderReq binds the reorder body and the :taskId path param.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("taskId")
	return req, nil
}
