package app

import (
	"net/http"
	"time"
)

// Context is the per-request state threaded through the middleware pipeline.
// It owns the raw transport handles, the free-form state bag used for
// inter-middleware communication, and the request/response facets. One
// Context is created per incoming connection and is never shared or pooled
// across requests; shared behavior and configuration live on the App it
// references.
//
// Context implements context.Context by delegating to the request's context,
// so middleware observes deadlines and client disconnects the usual Go way.
type Context struct {
	app *App
	w   *responseWriter
	r   *http.Request

	req Request
	res Response

	state       map[string]any
	originalURL string
	respond     bool
}

// NewContext builds the mutable request-scoped context for one connection.
// It captures the original request URL before any middleware can rewrite
// routing state, initializes an empty state bag, and wires the request and
// response views. It never fails and performs no I/O.
func (a *App) NewContext(w http.ResponseWriter, r *http.Request) *Context {
	c := &Context{
		app:         a,
		w:           newResponseWriter(w),
		r:           r,
		state:       make(map[string]any),
		originalURL: r.RequestURI,
		respond:     true,
	}
	c.req = Request{ctx: c}
	c.res = Response{ctx: c, status: http.StatusOK}
	return c
}

// App returns the application the context was created by.
func (c *Context) App() *App {
	return c.app
}

// Request returns the request view bound to this context.
func (c *Context) Request() *Request {
	return &c.req
}

// Response returns the response view bound to this context.
func (c *Context) Response() *Response {
	return &c.res
}

// HTTPRequest returns the raw transport request handle.
func (c *Context) HTTPRequest() *http.Request {
	return c.r
}

// ResponseWriter returns the raw transport response handle. The returned
// writer tracks whether headers have been sent; prefer it over any writer
// captured before the context was created.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// State returns the request-scoped key/value bag shared by all middleware.
// The core never reads it.
func (c *Context) State() map[string]any {
	return c.state
}

// Set stores a value in the state bag.
func (c *Context) Set(key string, value any) {
	c.state[key] = value
}

// Get reads a value from the state bag.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.state[key]
	return v, ok
}

// OriginalURL returns the request URL as received from the transport,
// captured at context creation and never mutated afterwards.
func (c *Context) OriginalURL() string {
	return c.originalURL
}

// Status returns the response status. Shorthand for Response().Status().
func (c *Context) Status() int {
	return c.res.Status()
}

// SetStatus sets the response status. Shorthand for Response().SetStatus(code).
func (c *Context) SetStatus(code int) {
	c.res.SetStatus(code)
}

// Body returns the response body. Shorthand for Response().Body().
func (c *Context) Body() any {
	return c.res.Body()
}

// SetBody sets the response body. Shorthand for Response().SetBody(body).
func (c *Context) SetBody(body any) {
	c.res.SetBody(body)
}

// SetRespond toggles automatic response finalization for this context.
// Middleware that writes to the transport directly should disable it.
func (c *Context) SetRespond(enabled bool) {
	c.respond = enabled
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context. The channel closes when the
// client disconnects or the server shuts the request down.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request's context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}
