// Package middleware ships pipeline stages for common cross-cutting
// concerns: request IDs, structured request logging, Prometheus metrics,
// and per-client rate limiting.
//
// Every middleware follows the same shape: a zero-config constructor and a
// WithConfig variant taking a Config struct with a Skip predicate.
//
//	a := app.New()
//	a.Use(middleware.RequestID())
//	a.Use(middleware.Logging())
//	a.Use(middleware.RateLimit())
package middleware
