package httpserver

import (
	"smart-task-manager/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants.
const (
	HealthMessage = "Smart Task Manager API"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-manager"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck also lists which storage-backed domains were mounted, so a
// deployment missing its storage shows up here rather than as 404s.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := statusBody("ready")
	body["domains"] = gin.H{
		"parser":      srv.parserUC != nil,
		"subtasks":    srv.subtaskUC != nil,
		"completions": srv.recurringUC != nil,
	}
	response.OK(c, body)
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
