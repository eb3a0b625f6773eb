package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionkit/onion/core/httperr"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := httperr.New(http.StatusNotFound, "user not found")

	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, "not_found", err.Code)
	assert.Equal(t, "user not found", err.Error())
	assert.True(t, err.Exposed(), "client errors are exposable by default")
}

func TestNewServerErrorNotExposed(t *testing.T) {
	t.Parallel()

	err := httperr.New(http.StatusBadGateway, "upstream exploded")

	assert.Equal(t, http.StatusBadGateway, err.StatusCode())
	assert.False(t, err.Exposed())
}

func TestNewDefaultsMessageToStatusText(t *testing.T) {
	t.Parallel()

	err := httperr.New(http.StatusConflict, "")

	assert.Equal(t, "Conflict", err.Error())
	assert.Equal(t, "conflict", err.Code)
}

func TestNewCoercesOutOfRangeStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{0, 200, 302, 600, -1} {
		err := httperr.New(status, "whatever")
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode(), "status %d", status)
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := httperr.Newf(http.StatusNotFound, "user %d not found", 42)

	assert.Equal(t, "user 42 not found", err.Error())
}

func TestWithModifiers(t *testing.T) {
	t.Parallel()

	base := httperr.New(http.StatusBadRequest, "invalid input")

	custom := base.WithMessage("try again")
	assert.Equal(t, "try again", custom.Error())
	assert.Equal(t, "invalid input", base.Error(), "modifiers copy, never mutate")

	hidden := base.WithExpose(false)
	assert.False(t, hidden.Exposed())
	assert.True(t, base.Exposed())

	detailed := base.WithDetails(map[string]any{"field": "email"})
	assert.Equal(t, "email", detailed.Details["field"])
	assert.Nil(t, base.Details)
}

func TestWithError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := httperr.ErrServiceUnavailable.WithError(cause)

	require.NotNil(t, err.Details)
	assert.Equal(t, "connection refused", err.Details["cause"])
}

func TestPredefinedErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, httperr.ErrNotFound.StatusCode())
	assert.Equal(t, "Not Found", httperr.ErrNotFound.Error())
	assert.Equal(t, http.StatusTooManyRequests, httperr.ErrTooManyRequests.StatusCode())
	assert.True(t, httperr.ErrTooManyRequests.Exposed())
	assert.Equal(t, http.StatusInternalServerError, httperr.ErrInternalServerError.StatusCode())
	assert.False(t, httperr.ErrInternalServerError.Exposed())
}

func TestErrorIsMatchesByStatusAndCode(t *testing.T) {
	t.Parallel()

	var err error = httperr.ErrNotFound.WithMessage("no such user")
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	assert.NotErrorIs(t, err, httperr.ErrBadRequest)
	assert.NotErrorIs(t, err, errors.New("not found"))
}
