package middleware

import (
	"property-listings/pkg/log"
	"property-listings/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New creates the shared HTTP middleware. rateLimitPerMin applies to routes
// wrapped with RateLimit(); 0 disables limiting.
func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(rateLimitPerMin),
	}
}
