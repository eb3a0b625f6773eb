// Package onion is a minimalist middleware-core HTTP framework. It provides
// an expressive onion-model middleware pipeline, a per-request context with
// request and response views, and centralized error handling. Nothing else:
// routing, content negotiation, and template rendering are left to
// middleware.
//
// # Package Organization
//
//	github.com/onionkit/onion/core/app     - Application, context, middleware composition, response finalization
//	github.com/onionkit/onion/core/httperr - Status-coded, expose-flagged HTTP errors for middleware
//	github.com/onionkit/onion/core/config  - Type-safe environment variable loading with caching
//	github.com/onionkit/onion/core/logger  - Structured logging helpers built on slog
//	github.com/onionkit/onion/core/server  - HTTP server with graceful shutdown
//	github.com/onionkit/onion/middleware   - Request ID, logging, Prometheus metrics, rate limiting
//
// # Example Usage
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/onionkit/onion/core/app"
//		"github.com/onionkit/onion/middleware"
//	)
//
//	func main() {
//		a := app.New(app.WithEnv("production"))
//
//		a.Use(middleware.RequestID())
//		a.Use(middleware.Logging())
//
//		a.Use(func(ctx *app.Context, next app.Next) error {
//			ctx.SetBody(map[string]string{"status": "ok"})
//			return nil
//		})
//
//		if err := a.Listen(context.Background(), ":8080"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/onionkit/onion/core/app
package onion
