// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track article lifecycle and association resolution
var (
	// ArticleOperationsTotal counts lifecycle operations by kind and outcome
	ArticleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_operations_total",
			Help: "Total number of article lifecycle operations",
		},
		[]string{"operation", "outcome"},
	)

	// ResolutionsTotal counts association resolutions by entity type and decision
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "association_resolutions_total",
			Help: "Total number of detached reference resolutions",
		},
		[]string{"entity", "decision"},
	)

	// ConflictsTotal counts store-level constraint conflicts surfaced to callers
	ConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_conflicts_total",
			Help: "Total number of store constraint conflicts",
		},
		[]string{"operation"},
	)

	// QueryDuration measures read-path query duration in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_query_duration_seconds",
			Help:    "Article query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)
)
