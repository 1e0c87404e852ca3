package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestReq binds and validates the suggest-subtasks request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
