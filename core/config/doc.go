// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package loads .env files on first use and parses environment
// variables into struct fields via the caarlos0/env library.
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics on failure, which is the usual choice during startup.
// Because values are cached per type, repeated loads of the same type are
// cheap and always agree with the first load.
package config
