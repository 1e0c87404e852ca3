package http

import (
	"smart-task-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the parser endpoints under /tasks. Both routes reach
// the model, so they sit behind the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.POST("/suggest-subtasks", mw.RateLimit(), h.SuggestSubtasks)
	}
}
