package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_generations_total",
			Help: "Total number of email generations by outcome",
		},
		[]string{"status"},
	)

	generationStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_generation_stage_duration_seconds",
			Help:    "Duration of each generation stage, model call included",
			Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"stage"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps label cardinality bounded when chi matched a route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// GenerationMetrics records pipeline metrics into the default registry.
type GenerationMetrics struct{}

func (GenerationMetrics) ObserveStage(stage string, d time.Duration) {
	generationStageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (GenerationMetrics) RecordGeneration(status string) {
	emailGenerations.WithLabelValues(status).Inc()
}

func (GenerationMetrics) RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
