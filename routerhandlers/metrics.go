package routerhandlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strandhttp/strand/router"
)

// MetricsConfig configures the Prometheus metrics middleware behaviour.
type MetricsConfig struct {
	// Namespace for metrics (e.g. "myapp").
	Namespace string

	// Subsystem for metrics. Defaults to "http".
	Subsystem string

	// Buckets for the request duration histogram. Defaults to
	// prometheus.DefBuckets.
	Buckets []float64

	// Registerer receives the collectors. Defaults to the global
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer

	// SkipPaths lists request paths that should not be metered, such
	// as the metrics endpoint itself.
	SkipPaths []string
}

// Metrics holds the Prometheus collectors for the middleware.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	activeRequests  *prometheus.GaugeVec

	skipPaths []string
}

// NewMetrics creates and registers the request collectors. Labels are
// method, the matched route template (so high-cardinality raw paths do
// not explode the series count), and status.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Subsystem == "" {
		cfg.Subsystem = "http"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = prometheus.DefBuckets
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   cfg.Buckets,
			},
			[]string{"method", "route", "status"},
		),
		responseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "route", "status"},
		),
		activeRequests: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_active",
				Help:      "Number of active HTTP requests",
			},
			[]string{"method", "route"},
		),
		skipPaths: cfg.SkipPaths,
	}
}

// Middleware returns a middleware that records request count, latency
// and response size for every request passing through it. The status
// code and body size are read from the dispatcher's response recorder
// after the rest of the chain has run.
func (m *Metrics) Middleware() router.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next func()) {
		for _, path := range m.skipPaths {
			if r.URL.Path == path {
				next()
				return
			}
		}

		route := r.URL.Path
		if current := router.CurrentRoute(r); current != nil {
			route = current.Template()
		}
		method := r.Method

		m.activeRequests.WithLabelValues(method, route).Inc()
		defer m.activeRequests.WithLabelValues(method, route).Dec()

		start := time.Now()
		next()
		duration := time.Since(start).Seconds()

		status := http.StatusOK
		size := 0
		if rec, ok := router.RecorderOf(w); ok {
			status = rec.Status()
			size = rec.BytesWritten()
		}
		statusLabel := strconv.Itoa(status)

		m.requestsTotal.WithLabelValues(method, route, statusLabel).Inc()
		m.requestDuration.WithLabelValues(method, route, statusLabel).Observe(duration)
		m.responseSize.WithLabelValues(method, route, statusLabel).Observe(float64(size))
	}
}

// MetricsHandler returns the Prometheus scrape handler for the default
// registry, typically mounted at GET /metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
