package middleware

import (
	"github.com/google/uuid"

	"github.com/onionkit/onion/core/app"
)

// requestIDStateKey is the state-bag key the request ID is stored under.
const requestIDStateKey = "request_id"

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *app.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It generates a new UUID for each request and records it in both the
// context state and the response headers.
func RequestID() app.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration.
func RequestIDWithConfig(cfg RequestIDConfig) app.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx *app.Context, next app.Next) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		var requestID string
		if cfg.UseExisting {
			requestID = ctx.Request().Header().Get(cfg.HeaderName)
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.Set(requestIDStateKey, requestID)
		ctx.Response().Header().Set(cfg.HeaderName, requestID)

		return next()
	}
}

// GetRequestID retrieves the request ID from the context state.
func GetRequestID(ctx *app.Context) (string, bool) {
	v, ok := ctx.Get(requestIDStateKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
