// Package metrics holds the Prometheus collectors shared by the API server
// and the notification worker. Collectors register on the default registry;
// expose them with promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total HTTP requests handled by the catalog API.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency in seconds by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// JobsProcessedTotal counts notification job executions by result
	// (completed | failed).
	JobsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_notification_jobs_total",
		Help: "Notification job attempts by result.",
	}, []string{"result"})

	// NotificationsPreparedTotal counts individual wishlist notifications
	// produced by the worker.
	NotificationsPreparedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_notifications_prepared_total",
		Help: "Wishlist notifications prepared.",
	})
)
