package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onionkit/onion/core/app"
)

// Metrics holds the Prometheus collectors for the metrics middleware.
// Labels are limited to method and status: the framework has no notion of a
// route pattern, and raw paths would explode label cardinality.
type Metrics struct {
	registry *prometheus.Registry
	inflight prometheus.Gauge
	reqTotal *prometheus.CounterVec
	reqDur   *prometheus.HistogramVec
	respSize *prometheus.HistogramVec
	errTotal prometheus.Counter
}

// NewMetrics creates a registry with Go runtime and process collectors plus
// the HTTP request collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Current number of in-flight HTTP requests",
		}),
		reqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method and status",
		}, []string{"method", "status"}),
		reqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency by method",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		respSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Response size by method",
			Buckets: []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		}, []string{"method"}),
		errTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_pipeline_errors_total",
			Help: "Total requests whose middleware pipeline returned an error",
		}),
	}
	registry.MustRegister(m.inflight, m.reqTotal, m.reqDur, m.respSize, m.errTotal)

	return m
}

// Registry exposes the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape endpoint for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware measures in-flight requests, totals, latency, size, and
// pipeline errors. Errors are counted and propagated unchanged.
func (m *Metrics) Middleware() app.Middleware {
	return func(ctx *app.Context, next app.Next) error {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()

		err := next()

		method := ctx.Request().Method()
		status := ctx.Response().Status()
		if err != nil {
			m.errTotal.Inc()
			// The error path synthesizes its own status; best effort here.
			if sc, ok := err.(interface{ StatusCode() int }); ok {
				status = sc.StatusCode()
			} else {
				status = http.StatusInternalServerError
			}
		}

		m.reqTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
		m.reqDur.WithLabelValues(method).Observe(time.Since(start).Seconds())
		m.respSize.WithLabelValues(method).Observe(float64(ctx.Response().BytesWritten()))

		return err
	}
}
