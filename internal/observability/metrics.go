// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogicum_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogicum_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PostsHiddenTotal counts detail requests denied by the visibility rules.
	PostsHiddenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogicum_posts_hidden_total",
		Help: "Total number of post detail requests hidden from non-authors",
	})

	// OwnershipRedirectsTotal counts mutations soft-denied by the ownership guard.
	OwnershipRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogicum_ownership_redirects_total",
		Help: "Total number of mutations redirected back to the post detail view",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
