// Package metrics exposes prometheus instrumentation for the HTTP surface and
// the event pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration observes handler latency by route and status.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chivent_http_request_duration_seconds",
		Help:    "HTTP request duration by route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "status"})

	// UpstreamPagesFetched counts Ticketmaster pages fetched.
	UpstreamPagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chivent_upstream_pages_fetched_total",
		Help: "Ticketmaster pages fetched from the Discovery API.",
	})

	// UpstreamFailures counts failed upstream fetches by status code.
	UpstreamFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chivent_upstream_failures_total",
		Help: "Failed Ticketmaster fetches by HTTP status.",
	}, []string{"status"})

	// CacheHits and CacheMisses count event cache lookups.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chivent_events_cache_hits_total",
		Help: "Event cache lookups served without recomputing.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chivent_events_cache_misses_total",
		Help: "Event cache lookups that triggered aggregation.",
	})
)

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware times the request and records it under route.
func Middleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		RequestDuration.WithLabelValues(route, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
	}
}
