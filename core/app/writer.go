package app

import (
	"net/http"
)

// responseWriter is a minimal wrapper around http.ResponseWriter that tracks
// whether a response has been written, the status code, and the body size.
type responseWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
	}
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Written returns true if WriteHeader has been called.
func (w *responseWriter) Written() bool {
	return w.written
}

// Status returns the HTTP status code sent to the client, or 0 if headers
// have not been written yet.
func (w *responseWriter) Status() int {
	return w.status
}

// BytesWritten returns the number of body bytes written so far.
func (w *responseWriter) BytesWritten() int {
	return w.bytes
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
