package middleware

import (
	pkgLog "reminder-bot/pkg/log"
)

// Middleware bundles the HTTP middlewares shared by all routes.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin caps how many requests a
// single client IP may send per minute.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}
