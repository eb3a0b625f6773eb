package app

import (
	"errors"
	"fmt"
)

var (
	// ErrNextCalledTwice reports that a middleware invoked its continuation
	// more than once. This is a middleware bug and is fatal to the request's
	// pipeline; it is never retried.
	ErrNextCalledTwice = errors.New("next() called more than once")

	// ErrNilMiddleware is the panic value of Use when passed a nil middleware.
	ErrNilMiddleware = errors.New("middleware must not be nil")

	// ErrNonErrorThrown marks failures whose original panic value was not an
	// error. The default reporter treats these as integrity violations and
	// never suppresses them.
	ErrNonErrorThrown = errors.New("non-error value thrown")
)

// PanicError wraps a value recovered from a panicking middleware, providing
// access to the original panic value and the stack captured at the panic point.
type PanicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured at the panic point.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics. It returns nil when
// the panic value was not an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// statusCoder is implemented by errors that carry an HTTP status code,
// such as httperr.Error.
type statusCoder interface {
	StatusCode() int
}

// exposer is implemented by errors whose message is safe to show to clients.
type exposer interface {
	Exposed() bool
}
