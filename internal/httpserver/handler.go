package httpserver

import (
	"context"

	"smart-task-manager/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP mode: %s (%s)", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupParserDomain(ctx, api)

	if srv.subtaskUC != nil {
		srv.setupSubtaskDomain(ctx, api)
	} else {
		srv.l.Warnf(ctx, "Subtask usecase not configured, skipping subtask routes")
	}

	if srv.recurringUC != nil {
		srv.setupRecurringDomain(ctx, api)
	} else {
		srv.l.Warnf(ctx, "Recurring usecase not configured, skipping completion routes")
	}

	return nil
}
