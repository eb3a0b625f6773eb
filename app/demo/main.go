package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/onionkit/onion/core/app"
	"github.com/onionkit/onion/core/config"
	"github.com/onionkit/onion/core/httperr"
	"github.com/onionkit/onion/core/logger"
	"github.com/onionkit/onion/core/server"
	"github.com/onionkit/onion/middleware"
)

type demoConfig struct {
	App    app.Config
	Server server.Config

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	log := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel), logger.Component("demo"))

	a := app.NewFromConfig(cfg.App, app.WithLogger(log))

	metrics := middleware.NewMetrics()

	a.Use(middleware.RequestID())
	a.Use(middleware.LoggingWithLogger(log))
	a.Use(metrics.Middleware())
	a.Use(middleware.RateLimitWithConfig(middleware.RateLimitConfig{
		PerSecond: 50,
		Burst:     100,
	}))

	// Poor man's routing: the core leaves dispatch to middleware.
	a.Use(func(ctx *app.Context, next app.Next) error {
		switch ctx.Request().Path() {
		case "/":
			ctx.SetBody(map[string]string{"hello": "world"})
			return nil
		case "/teapot":
			return httperr.New(http.StatusTeapot, "short and stout")
		case "/metrics":
			ctx.SetRespond(false)
			metrics.Handler().ServeHTTP(ctx.ResponseWriter(), ctx.HTTPRequest())
			return nil
		default:
			return next()
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("invalid server configuration", logger.Error(err))
		return
	}
	if err := srv.Start(ctx, a.Callback()); err != nil {
		log.Error("server stopped", logger.Error(err))
	}
}
