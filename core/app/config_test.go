package app_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onionkit/onion/core/app"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	a := app.NewFromConfig(app.Config{
		Env:             "production",
		Proxy:           true,
		SubdomainOffset: 3,
		ProxyHeader:     "X-Real-IP",
	})

	assert.Equal(t, app.Snapshot{
		SubdomainOffset: 3,
		Proxy:           true,
		Env:             "production",
	}, a.Snapshot())
}

func TestNewFromConfigOptionsOverride(t *testing.T) {
	t.Parallel()

	a := app.NewFromConfig(app.Config{Env: "production"}, app.WithEnv("test"))

	assert.Equal(t, "test", a.Env())
}

func TestNewFromConfigProxyHeaderApplies(t *testing.T) {
	t.Parallel()

	a := app.NewFromConfig(app.Config{
		Env:         "test",
		Proxy:       true,
		ProxyHeader: "X-Real-IP",
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "203.0.113.9")
	ctx := a.NewContext(httptest.NewRecorder(), r)

	assert.Equal(t, []string{"203.0.113.9"}, ctx.Request().IPs())
}
