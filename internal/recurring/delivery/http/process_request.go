package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processCompleteReq binds the optional body and the :taskId path param.
// An empty body is allowed when the task id carries the instance date.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	req.TaskID = c.Param("taskId")
	return req, nil
}

// processListReq binds the date range query and the :taskId path param.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("taskId")
	return req, nil
}
