package httpserver

import (
	"context"

	parserHTTP "smart-task-manager/internal/parser/delivery/http"
	recurringHTTP "smart-task-manager/internal/recurring/delivery/http"
	subtaskHTTP "smart-task-manager/internal/subtask/delivery/http"

	"github.com/gin-gonic/gin"
)

// Adding a domain:
//  1. Build its repository and usecase in cmd/api and pass the usecase via Config.
//  2. Create the HTTP handler here: h := mydomainHTTP.New(srv.l, uc)
//  3. Register routes: mydomainHTTP.RegisterRoutes(api, h, srv.mw)

// setupParserDomain registers /api/v1/tasks/parse and /api/v1/tasks/suggest-subtasks.
func (srv HTTPServer) setupParserDomain(ctx context.Context, api *gin.RouterGroup) {
	h := parserHTTP.New(srv.l, srv.parserUC)
	parserHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Parser domain registered")
}

func (srv HTTPServer) setupSubtaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := subtaskHTTP.New(srv.l, srv.subtaskUC)
	subtaskHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Subtask domain registered")
}

func (srv HTTPServer) setupRecurringDomain(ctx context.Context, api *gin.RouterGroup) {
	h := recurringHTTP.New(srv.l, srv.recurringUC)
	recurringHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Recurring domain registered")
}
