package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path, and status code.",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	questionsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questions_served_total",
			Help: "Questions served to users by source.",
		},
		[]string{"source"},
	)
)

// CountQuestions records served questions for the metrics endpoint.
func CountQuestions(source string, n int) {
	questionsServedTotal.WithLabelValues(source).Add(float64(n))
}

// MetricsMiddleware records request counts and latency. The path label uses
// the route pattern, not the raw URL, to keep cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		// ServeMux fills in r.Pattern once it has matched the route.
		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		httpRequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
	})
}
