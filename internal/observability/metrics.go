// Package observability holds the Prometheus instruments exported by the
// service. Instruments are registered once at package load via promauto and
// shared by the HTTP layer and the assignment sweep.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsCreatedTotal counts transport requests registered through the API.
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ambulance_dispatch",
		Name:      "requests_created_total",
		Help:      "Total number of transport requests created",
	})

	// AssignmentsTotal counts tentative driver bindings, labelled by how the
	// binding was triggered: "create" when done inline with request creation,
	// "reject" for a rebind after a driver declined, "sweep" for the
	// background job.
	AssignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ambulance_dispatch",
		Name:      "assignments_total",
		Help:      "Total number of tentative driver assignments",
	}, []string{"trigger"})

	// SweepDuration tracks how long one pass of the pending-request sweep takes.
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ambulance_dispatch",
		Name:      "sweep_duration_seconds",
		Help:      "Duration of one pending-request assignment sweep",
		Buckets:   prometheus.DefBuckets,
	})

	// HTTPRequestsTotal counts HTTP requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ambulance_dispatch",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests handled",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks HTTP request latency by method, route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ambulance_dispatch",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)
