package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests handled, by method, route and status",
		},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	ToDoItemsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "todo_items_created_total",
			Help: "Total ToDo items committed",
		},
	)
	ToDoItemConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "todo_items_conflicts_total",
			Help: "Total ToDo item writes rejected by a storage constraint",
		},
	)
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ToDoItemsCreated, ToDoItemConflicts, RLRequests, RLBlocked)
}
