package app

import (
	"runtime/debug"
)

// Next advances the pipeline to the next middleware and returns its error.
// A middleware may call its continuation zero or one times; a second call
// fails with ErrNextCalledTwice.
type Next func() error

// Middleware is a single stage of the request pipeline. It receives the
// request context and a continuation that runs the remaining stages.
// Returning a non-nil error terminates the pipeline and routes the error
// to the application's error handler.
type Middleware func(ctx *Context, next Next) error

// Compose reduces an ordered middleware list into a single middleware
// implementing the onion model: stages run in registration order on the way
// in and in reverse order on the way out, once each stage's continuation
// settles. A stage that never calls next short-circuits everything after it;
// stages before it still unwind normally.
//
// The optional trailing next of the composed middleware runs after the last
// stage; when it is nil the pipeline completes successfully at that point.
// An empty list composes to a no-op that completes immediately.
//
// A panic inside any stage is recovered at that stage's own pipeline frame
// and surfaced as its error, wrapped in *PanicError with the stack captured
// at the panic point. Enclosing stages observe it as the return value of
// their next call, exactly like any other downstream failure.
func Compose(middleware []Middleware) Middleware {
	// Snapshot the list so a pipeline already serving traffic is unaffected
	// by later registrations.
	mw := make([]Middleware, len(middleware))
	copy(mw, middleware)

	return func(ctx *Context, next Next) error {
		// index is the cursor of the deepest stage entered so far. Each
		// derived continuation targets a fixed index; dispatching to an index
		// at or below the cursor means the continuation was called twice.
		index := -1

		var dispatch func(int) error
		dispatch = func(i int) (err error) {
			if i <= index {
				return ErrNextCalledTwice
			}
			index = i
			defer func() {
				if p := recover(); p != nil {
					err = &PanicError{value: p, stack: debug.Stack()}
				}
			}()
			if i == len(mw) {
				if next == nil {
					return nil
				}
				return next()
			}
			return mw[i](ctx, func() error { return dispatch(i + 1) })
		}

		return dispatch(0)
	}
}
