package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/onionkit/onion/core/app"
	"github.com/onionkit/onion/core/httperr"
)

// RateLimitConfig configures the per-client rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx *app.Context) bool

	// PerSecond is the token refill rate per client (default: 10)
	PerSecond float64

	// Burst is the bucket capacity per client (default: 20)
	Burst int

	// TTL controls how long an idle client stays tracked (default: 3m)
	TTL time.Duration

	// KeyFunc derives the client key (default: Request().IP())
	KeyFunc func(ctx *app.Context) string

	// OnDenied is called for every denied request
	OnDenied func(ctx *app.Context, key string)
}

// visitor tracks a single client's limiter and last activity.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter holds per-client token buckets with inline eviction: stale
// entries are swept during lookups once per TTL interval, so no background
// goroutine is needed.
type ipLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perSecond rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
}

func (l *ipLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.ttl {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) >= l.ttl {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.Allow()
}

// RateLimit creates a per-client-IP rate limiting middleware with default
// configuration. This is an in-memory limiter, not shared across instances;
// it protects a single process from a single noisy client, nothing more.
func RateLimit() app.Middleware {
	return RateLimitWithConfig(RateLimitConfig{})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. Denied requests fail the pipeline with a 429 error that is
// exposable, so the client sees the message and the default reporter stays
// quiet about it.
func RateLimitWithConfig(cfg RateLimitConfig) app.Middleware {
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 3 * time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(ctx *app.Context) string {
			return ctx.Request().IP()
		}
	}

	limiter := &ipLimiter{
		visitors:  make(map[string]*visitor),
		perSecond: rate.Limit(cfg.PerSecond),
		burst:     cfg.Burst,
		ttl:       cfg.TTL,
		lastSweep: time.Now(),
	}

	return func(ctx *app.Context, next app.Next) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		key := cfg.KeyFunc(ctx)
		if !limiter.allow(key, time.Now()) {
			if cfg.OnDenied != nil {
				cfg.OnDenied(ctx, key)
			}
			return httperr.ErrTooManyRequests
		}

		return next()
	}
}
