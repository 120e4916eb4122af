package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

var knownRoutes = map[string]bool{
	"/":        true,
	"/health":  true,
	"/info":    true,
	"/metrics": true,
}

type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics builds collectors on a private registry so that several
// applications (tests included) never clash on registration.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by method and route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Client-supplied methods outside this set share one label value so the
// series count stays bounded.
var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

const otherMethod = "other"

func methodLabel(method string) string {
	if knownMethods[method] {
		return method
	}
	return otherMethod
}

func routeLabel(path string, status int) string {
	if status == http.StatusNotFound || !knownRoutes[path] {
		return unmatchedRoute
	}
	return path
}

func (app *application) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		method := methodLabel(r.Method)
		route := routeLabel(r.URL.Path, rec.status)
		app.metrics.requests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		app.metrics.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}
