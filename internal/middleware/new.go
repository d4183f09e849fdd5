package middleware

import (
	"task-intake/pkg/log"
)

// Config tunes the middleware set.
type Config struct {
	// RateLimitPerMin caps requests per client on rate-limited routes.
	// Zero or less disables the limit.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
