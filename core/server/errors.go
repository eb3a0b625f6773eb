package server

import "errors"

var (
	// ErrMissingAddress is returned when a server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrAlreadyRunning is returned by Start on a server that is serving.
	ErrAlreadyRunning = errors.New("server already running")
)
