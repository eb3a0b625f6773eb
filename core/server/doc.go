// Package server wraps http.Server with context-driven lifecycle and
// graceful shutdown. Start blocks until the context is canceled and then
// drains in-flight requests for the configured shutdown timeout.
//
//	err := server.Run(ctx, ":8080", a.Callback(),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
// Configuration comes from functional options or, via NewFromConfig, from
// environment variables with SERVER_* names.
package server
