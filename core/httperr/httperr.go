package httperr

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is a structured HTTP failure that middleware can return to
// short-circuit a pipeline with a specific status code. Expose marks the
// message as safe to show to clients; constructors default it to true for
// 4xx codes and false otherwise.
type Error struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Expose  bool           `json:"-"`                 // Message is safe for clients
	Details map[string]any `json:"details,omitempty"` // Optional context
}

// New creates an Error with the given status and message. Statuses outside
// the 4xx/5xx range are coerced to 500. Client errors are exposable by
// default; server errors are not.
func New(status int, message string) Error {
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return Error{
		Status:  status,
		Code:    codeFor(status),
		Message: message,
		Expose:  status < 500,
	}
}

// Newf creates an Error with a formatted message.
func Newf(status int, format string, args ...any) Error {
	return New(status, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// Is reports whether target is an Error with the same status and code.
// The Details map makes the type uncomparable, so errors.Is needs this to
// match against the predefined values.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code
}

// StatusCode returns the HTTP status code for the error.
func (e Error) StatusCode() int {
	return e.Status
}

// Exposed reports whether the message is safe to show to clients.
func (e Error) Exposed() bool {
	return e.Expose
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithExpose returns a copy of the error with the expose flag set.
func (e Error) WithExpose(expose bool) Error {
	e.Expose = expose
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e Error) WithDetails(details map[string]any) Error {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause recorded in the
// details.
func (e Error) WithError(err error) Error {
	if e.Details == nil {
		e.Details = map[string]any{"cause": err.Error()}
	} else {
		e.Details["cause"] = err.Error()
	}
	return e
}

// codeFor derives the machine-readable code from the status text,
// e.g. 404 -> "not_found".
func codeFor(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("status_%d", status)
	}
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", "_")
	return strings.ReplaceAll(text, "-", "_")
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	// 4xx client errors
	ErrBadRequest       = New(http.StatusBadRequest, "")
	ErrUnauthorized     = New(http.StatusUnauthorized, "")
	ErrForbidden        = New(http.StatusForbidden, "")
	ErrNotFound         = New(http.StatusNotFound, "")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "")
	ErrRequestTimeout   = New(http.StatusRequestTimeout, "")
	ErrConflict         = New(http.StatusConflict, "")
	ErrGone             = New(http.StatusGone, "")
	ErrPayloadTooLarge  = New(http.StatusRequestEntityTooLarge, "")
	ErrUnprocessable    = New(http.StatusUnprocessableEntity, "")
	ErrTooManyRequests  = New(http.StatusTooManyRequests, "")

	// 5xx server errors
	ErrInternalServerError = New(http.StatusInternalServerError, "")
	ErrNotImplemented      = New(http.StatusNotImplemented, "")
	ErrBadGateway          = New(http.StatusBadGateway, "")
	ErrServiceUnavailable  = New(http.StatusServiceUnavailable, "")
	ErrGatewayTimeout      = New(http.StatusGatewayTimeout, "")
)
