package http

import (
	"smart-task-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the subtask endpoints. Task-scoped routes live under
// /tasks/:taskId, single-subtask routes under /subtasks/:id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks/:taskId/subtasks", mw.RateLimit())
	{
		tasks.GET("", h.List)
		tasks.PUT("/order", h.Reorder)
		tasks.POST("/complete-all", h.CompleteAll)
	}

	subtasks := rg.Group("/subtasks", mw.RateLimit())
	{
		subtasks.POST("", h.Create)
		subtasks.PUT("/:id", h.Update)
		subtasks.DELETE("/:id", h.Delete)
		subtasks.POST("/:id/complete", h.Complete)
		subtasks.POST("/:id/uncomplete", h.Uncomplete)
	}
}
