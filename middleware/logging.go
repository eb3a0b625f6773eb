package middleware

import (
	"log/slog"
	"time"

	"github.com/onionkit/onion/core/app"
	"github.com/onionkit/onion/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *app.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
// Each request is logged once, on the unwind, with method, path, status,
// response size, and latency.
func Logging() app.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) app.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Pipeline errors are logged and propagated unchanged, so
// the application's error path still runs.
func LoggingWithConfig(cfg LoggingConfig) app.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx *app.Context, next app.Next) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		start := time.Now()
		err := next()
		elapsed := time.Since(start)

		attrs := []any{
			logger.Component(cfg.Component),
			logger.Method(ctx.Request().Method()),
			logger.Path(ctx.Request().Path()),
			logger.Status(ctx.Response().Status()),
			logger.Latency(elapsed),
			slog.Int("bytes", ctx.Response().BytesWritten()),
		}
		if id, ok := GetRequestID(ctx); ok {
			attrs = append(attrs, slog.String("request_id", id))
		}

		switch {
		case err != nil:
			cfg.Logger.Error("request failed", append(attrs, logger.Error(err))...)
		case elapsed >= cfg.SlowRequestThreshold:
			cfg.Logger.Warn("slow request", attrs...)
		default:
			cfg.Logger.Log(ctx, cfg.LogLevel, "request completed", attrs...)
		}

		return err
	}
}
