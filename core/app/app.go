package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/onionkit/onion/core/logger"
	"github.com/onionkit/onion/core/server"
)

// ErrorHandler is the strategy invoked with every uncaught pipeline failure.
// It decides observability (log, count, forward) but not the client-facing
// response, which the dispatcher synthesizes separately.
type ErrorHandler func(ctx *Context, err error)

// App holds the ordered middleware list and the process-wide configuration
// every request context derives from. It is effectively immutable once
// Callback or Listen has been called: registration is append-only and must
// finish before traffic starts.
type App struct {
	middleware []Middleware

	env             string
	proxy           bool
	subdomainOffset int
	proxyHeader     string
	maxIPsCount     int
	keys            [][]byte
	silent          bool

	logger  *slog.Logger
	onError ErrorHandler
}

// Snapshot is the introspection representation of an application.
type Snapshot struct {
	SubdomainOffset int    `json:"subdomainOffset"`
	Proxy           bool   `json:"proxy"`
	Env             string `json:"env"`
}

// New creates an application with the given options. The environment name
// defaults to the APP_ENV variable, falling back to "development".
func New(opts ...Option) *App {
	a := &App{
		env:             "development",
		subdomainOffset: 2,
		proxyHeader:     "X-Forwarded-For",
		logger:          slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		a.env = env
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Use appends a middleware to the pipeline and returns the application for
// chaining. Passing nil is a programmer error and panics with
// ErrNilMiddleware. Middleware is never reordered or removed.
func (a *App) Use(fn Middleware) *App {
	if fn == nil {
		panic(ErrNilMiddleware)
	}
	a.middleware = append(a.middleware, fn)
	return a
}

// Env returns the environment name.
func (a *App) Env() string {
	return a.env
}

// Keys returns the configured signing keys.
func (a *App) Keys() [][]byte {
	return a.keys
}

// Snapshot returns the introspection view of the application configuration.
func (a *App) Snapshot() Snapshot {
	return Snapshot{
		SubdomainOffset: a.subdomainOffset,
		Proxy:           a.proxy,
		Env:             a.env,
	}
}

// Callback composes the registered middleware once and returns the
// per-connection entry point, suitable for direct registration with any
// net/http server or mux.
func (a *App) Callback() http.HandlerFunc {
	pipeline := Compose(a.middleware)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := a.NewContext(w, r)
		a.serve(ctx, pipeline)
	}
}

// Listen starts an HTTP server on addr with the composed pipeline as its
// handler and blocks until ctx is canceled or the server fails. It is a
// convenience wrapper over core/server; use Callback for anything custom.
func (a *App) Listen(ctx context.Context, addr string, opts ...server.Option) error {
	opts = append([]server.Option{server.WithLogger(a.logger)}, opts...)
	return server.Run(ctx, addr, a.Callback(), opts...)
}

// serve drives one request through the pipeline and then through exactly one
// of the two settlement paths: response finalization or error handling.
// Transport failures surfacing during finalization (a client gone mid-stream)
// are routed to the reporter even though output may have begun.
func (a *App) serve(ctx *Context, pipeline Middleware) {
	ctx.res.setDefaultStatus(http.StatusNotFound)

	if err := pipeline(ctx, nil); err != nil {
		a.handleError(ctx, err)
		return
	}
	if err := respond(ctx); err != nil {
		a.handleError(ctx, err)
	}
}

// handleError reports an uncaught pipeline failure and synthesizes the
// status-based error response when the transport is still writable.
func (a *App) handleError(ctx *Context, err error) {
	if a.onError != nil {
		a.onError(ctx, err)
	} else {
		a.report(ctx, err)
	}
	errorResponse(ctx, err)
}

// report is the default error reporter. Routine outcomes (404s and errors
// explicitly marked exposable) are silent, as is everything when the
// application is configured silent. Failures whose panic value was not an
// error are integrity violations and are always reported. It never panics
// for well-formed errors and never terminates the process.
func (a *App) report(ctx *Context, err error) {
	var pe *PanicError
	if errors.As(err, &pe) && pe.Unwrap() == nil {
		a.logger.Error("middleware integrity violation",
			logger.Error(ErrNonErrorThrown),
			slog.Any("value", pe.Value()),
			slog.String("stack", indent(string(pe.Stack()))),
			slog.String("path", ctx.originalURL),
		)
		return
	}

	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() == http.StatusNotFound {
		return
	}
	var ex exposer
	if errors.As(err, &ex) && ex.Exposed() {
		return
	}
	if a.silent {
		return
	}

	attrs := []any{
		logger.Error(err),
		slog.String("method", ctx.r.Method),
		slog.String("path", ctx.originalURL),
	}
	if errors.As(err, &pe) {
		attrs = append(attrs, slog.String("stack", indent(string(pe.Stack()))))
	}
	a.logger.Error("unhandled middleware error", attrs...)
}

// errorResponse writes the client-facing representation of a pipeline
// failure: previously staged headers are dropped, the error's status code is
// honored (500 otherwise), and the message is shown only for exposable
// errors. Nothing is written once headers have been sent.
func errorResponse(ctx *Context, err error) {
	res := ctx.Response()
	if res.HeaderSent() || !res.Writable() {
		return
	}

	w := ctx.w
	for name := range w.Header() {
		w.Header().Del(name)
	}

	code := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) {
		if c := sc.StatusCode(); c >= 400 && c <= 599 {
			code = c
		}
	}

	msg := http.StatusText(code)
	var ex exposer
	if errors.As(err, &ex) && ex.Exposed() {
		msg = err.Error()
	}
	if msg == "" {
		msg = strconv.Itoa(code)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(msg)))
	w.WriteHeader(code)
	io.WriteString(w, msg)
}

// indent prefixes every line for readable multi-line diagnostics.
func indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n  ")
}
