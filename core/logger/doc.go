// Package logger provides structured logging helpers built on log/slog:
// constructors for the common handler setups and attribute helpers with
// consistent keys for errors, timing, and HTTP request fields.
//
//	log := logger.New(logger.Component("app"))
//	log.Error("request failed", logger.Error(err), logger.Status(500))
package logger
