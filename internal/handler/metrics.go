package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the trending service.
var Metrics = struct {
	PipelineRunsTotal     *prometheus.CounterVec
	PipelineDuration      prometheus.Histogram
	TrendingVideosFetched prometheus.Counter
	RequestDuration       *prometheus.HistogramVec
	RequestsInFlight      prometheus.Gauge
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics() {
	Metrics.PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trending_pipeline_runs_total",
			Help: "Total trending pipeline runs, by outcome.",
		},
		[]string{"outcome"},
	)

	Metrics.PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trending_pipeline_run_duration_seconds",
			Help:    "Duration of successful trending pipeline runs.",
			Buckets: prometheus.DefBuckets,
		},
	)

	Metrics.TrendingVideosFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trending_videos_fetched_total",
			Help: "Total trending videos fetched across all runs.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trending_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trending_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	prometheus.MustRegister(
		Metrics.PipelineRunsTotal,
		Metrics.PipelineDuration,
		Metrics.TrendingVideosFetched,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
// Every route is static, so the path itself is a safe label value.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		endpoint := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
