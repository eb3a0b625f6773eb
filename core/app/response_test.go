package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionkit/onion/core/app"
)

func TestResponseBodyPromotesDefaultStatus(t *testing.T) {
	t.Parallel()

	// Inside a pipeline the dispatcher seeds a non-explicit 404; setting a
	// body alone must yield a 200.
	var during int
	w := serve(t, func(ctx *app.Context, next app.Next) error {
		during = ctx.Status()
		ctx.SetBody("hi")
		return nil
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, during)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestResponseBodyKeepsExplicitStatus(t *testing.T) {
	t.Parallel()

	w := serve(t, func(ctx *app.Context, next app.Next) error {
		ctx.SetStatus(http.StatusNotFound)
		ctx.SetBody("custom not found page")
		return nil
	}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "custom not found page", w.Body.String())
}

func TestResponseNilBodyPromotesTo204(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)
	res := ctx.Response()

	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", "2")
	res.Header().Set("Transfer-Encoding", "chunked")
	res.SetStatus(http.StatusOK)
	res.SetBody(nil)

	assert.Equal(t, http.StatusNoContent, res.Status())
	assert.Empty(t, res.Header().Get("Content-Type"))
	assert.Empty(t, res.Header().Get("Content-Length"))
	assert.Empty(t, res.Header().Get("Transfer-Encoding"))
}

func TestResponseEmptyStatusDiscardsBody(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)
	res := ctx.Response()

	res.SetBody("pending")
	res.SetStatus(http.StatusNotModified)

	assert.Nil(t, res.Body())
}

func TestResponseLength(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)
	res := ctx.Response()

	_, ok := res.Length()
	assert.False(t, ok, "nil body has no known length")

	res.SetBody("hello")
	n, ok := res.Length()
	require.True(t, ok)
	assert.EqualValues(t, 5, n)

	res.SetBody([]byte{1, 2, 3})
	n, ok = res.Length()
	require.True(t, ok)
	assert.EqualValues(t, 3, n)

	res.SetBody(map[string]int{"a": 1})
	n, ok = res.Length()
	require.True(t, ok)
	assert.EqualValues(t, 7, n, `serialized as {"a":1}`)

	res.SetBody(strings.NewReader("stream"))
	_, ok = res.Length()
	assert.False(t, ok, "streams have no known length")
}

func TestResponseSetLengthOverrides(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)
	res := ctx.Response()

	res.SetBody("hello")
	res.SetLength(100)

	n, ok := res.Length()
	require.True(t, ok)
	assert.EqualValues(t, 100, n)
}

func TestResponseHeaderSentAndBytesWritten(t *testing.T) {
	t.Parallel()

	ctx := newTestContext(t)
	res := ctx.Response()

	assert.False(t, res.HeaderSent())
	assert.True(t, res.Writable())
	assert.Zero(t, res.BytesWritten())

	ctx.ResponseWriter().WriteHeader(http.StatusOK)
	_, err := ctx.ResponseWriter().Write([]byte("hello"))
	require.NoError(t, err)

	assert.True(t, res.HeaderSent())
	assert.False(t, res.Writable())
	assert.Equal(t, 5, res.BytesWritten())
}
