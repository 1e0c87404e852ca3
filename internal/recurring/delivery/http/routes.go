package http

import (
	"smart-task-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the completion endpoints. Every route needs the
// caller's user id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	completions := rg.Group("/tasks/:taskId/completions", mw.RateLimit(), mw.Scope())
	{
		completions.POST("", h.Complete)
		completions.GET("", h.List)
		completions.DELETE("/:date", h.Uncomplete)
	}
}
