package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/secret-santa-backend/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// StackConfig holds what the request pipeline needs.
type StackConfig struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Tokens    tokenValidator
}

// Stack builds the pipeline every route runs behind, outermost first:
// Recovery, RequestID, Logger, CORS, RateLimit (when enabled), Auth, Visitor.
// CORS answers preflights before the limiter counts them, and throttled
// callers are turned away before an organizer token is verified. stop
// releases the limiter's cleanup goroutine.
func Stack(cfg StackConfig) (wrap Middleware, stop func()) {
	mws := []Middleware{
		Recovery(cfg.Logger),
		RequestID,
		Logger(cfg.Logger),
		CORS(cfg.CORS),
	}

	stop = func() {}
	if cfg.RateLimit.Enabled {
		limiter := NewRateLimiter(cfg.RateLimit.CleanupInterval)
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
		stop = limiter.Stop
	}

	mws = append(mws, Auth(cfg.Tokens), Visitor)

	return chain(mws...), stop
}

// chain applies mws so that the first one runs outermost.
func chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
