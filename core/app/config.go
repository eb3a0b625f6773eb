package app

// Config holds application configuration with environment variable support.
type Config struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Proxy           bool   `env:"APP_PROXY" envDefault:"false"`
	SubdomainOffset int    `env:"APP_SUBDOMAIN_OFFSET" envDefault:"2"`
	ProxyHeader     string `env:"APP_PROXY_HEADER" envDefault:"X-Forwarded-For"`
	MaxIPsCount     int    `env:"APP_MAX_IPS_COUNT" envDefault:"0"`
	Silent          bool   `env:"APP_SILENT" envDefault:"false"`
}

// NewFromConfig creates an application from configuration. Additional
// options can override config values.
func NewFromConfig(cfg Config, opts ...Option) *App {
	configOpts := []Option{
		WithEnv(cfg.Env),
		WithProxy(cfg.Proxy),
		WithSubdomainOffset(cfg.SubdomainOffset),
		WithProxyHeader(cfg.ProxyHeader),
		WithMaxIPsCount(cfg.MaxIPsCount),
		WithSilent(cfg.Silent),
	}
	return New(append(configOpts, opts...)...)
}
