package app

import (
	"encoding/json"
	"io"
	"net/http"
)

// Response is the response view bound to one context. Its status and body
// fields are the sole channel through which middleware communicates the
// eventual HTTP response; they may be set any number of times, and only the
// final values at pipeline settlement are honored.
type Response struct {
	ctx *Context

	status         int
	explicitStatus bool
	body           any
	explicitNull   bool
	length         int64
	lengthSet      bool
}

// Context returns the owning request context.
func (r *Response) Context() *Context {
	return r.ctx
}

// Request returns the request view of the same context.
func (r *Response) Request() *Request {
	return r.ctx.Request()
}

// Status returns the pending response status.
func (r *Response) Status() int {
	return r.status
}

// SetStatus sets the pending response status. An empty-class status
// (204, 205, 304) discards any pending body.
func (r *Response) SetStatus(code int) {
	r.status = code
	r.explicitStatus = true
	if r.body != nil && statusEmpty(code) {
		r.body = nil
	}
}

// setDefaultStatus records a status without marking it explicit, so a later
// SetBody can still promote it.
func (r *Response) setDefaultStatus(code int) {
	r.status = code
	r.explicitStatus = false
}

// Body returns the pending response body.
func (r *Response) Body() any {
	return r.body
}

// SetBody sets the pending response body. Setting a non-nil body promotes a
// non-explicit status to 200. Explicitly setting a nil body records the
// no-body marker, promotes a non-empty status to 204, and drops entity
// headers set earlier.
func (r *Response) SetBody(body any) {
	r.body = body

	if body == nil {
		r.explicitNull = true
		if !statusEmpty(r.status) {
			r.status = http.StatusNoContent
		}
		h := r.Header()
		h.Del("Content-Type")
		h.Del("Content-Length")
		h.Del("Transfer-Encoding")
		r.lengthSet = false
		return
	}

	r.explicitNull = false
	if !r.explicitStatus {
		r.status = http.StatusOK
	}
}

// Header returns the response header map.
func (r *Response) Header() http.Header {
	return r.ctx.w.Header()
}

// SetLength sets an explicit Content-Length, overriding computation from
// the body.
func (r *Response) SetLength(n int64) {
	r.length = n
	r.lengthSet = true
}

// Length reports the response length in bytes when it can be determined:
// the explicitly set length, or the size of a string, byte-slice, or
// JSON-serializable body. Streams and nil bodies have no known length.
func (r *Response) Length() (int64, bool) {
	if r.lengthSet {
		return r.length, true
	}
	switch b := r.body.(type) {
	case nil:
		return 0, false
	case string:
		return int64(len(b)), true
	case []byte:
		return int64(len(b)), true
	case io.Reader:
		return 0, false
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return 0, false
		}
		return int64(len(data)), true
	}
}

// HeaderSent reports whether response headers have been written to the
// transport.
func (r *Response) HeaderSent() bool {
	return r.ctx.w.Written()
}

// Writable reports whether the response can still be written: headers are
// unsent and the connection has not been canceled.
func (r *Response) Writable() bool {
	return !r.ctx.w.Written() && r.ctx.r.Context().Err() == nil
}

// BytesWritten returns the number of body bytes flushed to the transport.
func (r *Response) BytesWritten() int {
	return r.ctx.w.BytesWritten()
}

// statusEmpty reports whether the status code forbids a response body.
func statusEmpty(code int) bool {
	switch code {
	case http.StatusNoContent, http.StatusResetContent, http.StatusNotModified:
		return true
	}
	return false
}
