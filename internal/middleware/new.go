package middleware

import (
	"smart-task-manager/pkg/log"
)

// Middleware bundles the gin middleware shared by every domain.
type Middleware struct {
	l           log.Logger
	rateLimiter *clientRateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client IP;
// a non-positive value disables HTTP rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.rateLimiter = newClientRateLimiter(requestsPerMin)
	}
	return mw
}
