package middleware

import (
	"adhd-planner/pkg/log"
)

// Middleware bundles the gin middlewares shared by every route group.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. generatePerMin <= 0 disables rate limiting.
func New(l log.Logger, generatePerMin int) Middleware {
	mw := Middleware{l: l}
	if generatePerMin > 0 {
		mw.limiter = newRateLimiter(generatePerMin)
	}
	return mw
}
