package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionkit/onion/core/app"
	"github.com/onionkit/onion/middleware"
)

func TestLoggingCompletedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	run(t, httptest.NewRequest(http.MethodGet, "/users", nil),
		middleware.LoggingWithLogger(log),
		func(ctx *app.Context, next app.Next) error {
			ctx.SetBody("hello")
			return nil
		},
	)

	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/users")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "bytes=5")
	assert.Contains(t, out, "latency=")
}

func TestLoggingFailedRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	boom := errors.New("boom")

	var propagated error
	run(t, httptest.NewRequest(http.MethodGet, "/", nil),
		func(ctx *app.Context, next app.Next) error {
			propagated = next()
			return propagated
		},
		middleware.LoggingWithLogger(log),
		func(ctx *app.Context, next app.Next) error {
			return boom
		},
	)

	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "boom")
	assert.ErrorIs(t, propagated, boom, "errors must propagate through the logging stage")
}

func TestLoggingSlowRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	run(t, httptest.NewRequest(http.MethodGet, "/", nil),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: time.Nanosecond,
		}),
		func(ctx *app.Context, next app.Next) error {
			time.Sleep(time.Millisecond)
			ctx.SetBody("ok")
			return nil
		},
	)

	assert.Contains(t, buf.String(), "slow request")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggingIncludesRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	run(t, httptest.NewRequest(http.MethodGet, "/", nil),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string { return "req-123" },
		}),
		middleware.LoggingWithLogger(log),
		func(ctx *app.Context, next app.Next) error {
			ctx.SetBody("ok")
			return nil
		},
	)

	assert.Contains(t, buf.String(), "request_id=req-123")
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	run(t, httptest.NewRequest(http.MethodGet, "/healthz", nil),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(ctx *app.Context) bool { return ctx.Request().Path() == "/healthz" },
		}),
		func(ctx *app.Context, next app.Next) error {
			ctx.SetBody("ok")
			return nil
		},
	)

	require.Zero(t, buf.Len())
}
