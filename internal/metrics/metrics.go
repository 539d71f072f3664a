// Package metrics holds the Prometheus collectors shared by the admin API,
// the collaborator client and the page controllers.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_admin_http_requests_total",
			Help: "Total number of admin API requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_admin_http_request_duration_seconds",
			Help:    "Duration of admin API requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	collaboratorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_admin_collaborator_requests_total",
			Help: "Total number of requests sent to the REST collaborator",
		},
		[]string{"method", "route", "status"},
	)

	collaboratorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_admin_collaborator_request_duration_seconds",
			Help:    "Duration of requests sent to the REST collaborator",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	pageOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_admin_page_operations_total",
			Help: "Total number of page operations by entity and outcome",
		},
		[]string{"entity", "operation", "status"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_admin_active_sessions",
			Help: "Number of admin sessions currently held in memory",
		},
	)
)

func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, path, code).Inc()
	httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// ObserveCollaboratorCall records one collaborator round trip. status is 0
// when the request never got a response.
func ObserveCollaboratorCall(method, route string, status int, duration time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	collaboratorCalls.WithLabelValues(method, route, code).Inc()
	collaboratorDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordPageOperation counts one finished page operation.
func RecordPageOperation(entity string, op string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	pageOperations.WithLabelValues(entity, op, status).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
