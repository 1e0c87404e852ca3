package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smart-task-manager/internal/model"
	pkgErrors "smart-task-manager/pkg/errors"
	"smart-task-manager/pkg/response"
)

// UserIDHeader carries the authenticated user id set by the upstream gateway.
const UserIDHeader = "X-User-ID"

type scopeCtxKey struct{}

// Scope requires a UUID user id header and stores it in the request context.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid user id"), nil)
			c.Abort()
			return
		}

		ctx := SetScope(c.Request.Context(), model.Scope{UserID: id.String()})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SetScope returns a copy of ctx carrying sc.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScope returns the scope stored by the Scope middleware.
func GetScope(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok
}
