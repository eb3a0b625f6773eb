package app

import "log/slog"

// Option configures an App during creation.
type Option func(*App)

// WithEnv sets the environment name, e.g. "production".
func WithEnv(env string) Option {
	return func(a *App) {
		if env != "" {
			a.env = env
		}
	}
}

// WithProxy enables trust in proxy-supplied headers (forwarded host, proto,
// and the client address chain).
func WithProxy(trust bool) Option {
	return func(a *App) {
		a.proxy = trust
	}
}

// WithSubdomainOffset sets how many trailing host labels are ignored when
// computing subdomains. The default of 2 treats "example.com" as the apex.
func WithSubdomainOffset(offset int) Option {
	return func(a *App) {
		if offset >= 0 {
			a.subdomainOffset = offset
		}
	}
}

// WithProxyHeader sets the header carrying the client address chain.
// Defaults to X-Forwarded-For.
func WithProxyHeader(name string) Option {
	return func(a *App) {
		if name != "" {
			a.proxyHeader = name
		}
	}
}

// WithMaxIPsCount limits how many proxy-chain addresses are trusted,
// counted from the server side. Zero means unlimited.
func WithMaxIPsCount(n int) Option {
	return func(a *App) {
		if n >= 0 {
			a.maxIPsCount = n
		}
	}
}

// WithKeys sets the signing keys available to cookie- and token-signing
// middleware.
func WithKeys(keys ...[]byte) Option {
	return func(a *App) {
		a.keys = keys
	}
}

// WithSilent suppresses default error reporting entirely. Integrity
// violations (non-error panic values) are still reported.
func WithSilent(silent bool) Option {
	return func(a *App) {
		a.silent = silent
	}
}

// WithLogger sets the diagnostics logger. Defaults to a text handler on
// stderr.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.logger = log
		}
	}
}

// WithErrorHandler replaces the default error reporter. The handler decides
// observability only; the dispatcher still synthesizes the client-facing
// error response.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.onError = h
		}
	}
}
