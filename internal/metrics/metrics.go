// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls to the geocoding and forecast APIs
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherdash",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to upstream weather APIs, by api and outcome.",
	}, []string{"api", "outcome"})

	// CacheLookups counts forecast cache hits and misses
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherdash",
		Name:      "forecast_cache_lookups_total",
		Help:      "Forecast cache lookups, by backend and result.",
	}, []string{"backend", "result"})

	// DashboardRequests counts dashboard assemblies by outcome
	DashboardRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weatherdash",
		Name:      "dashboard_requests_total",
		Help:      "Dashboard requests, by outcome.",
	}, []string{"outcome"})
)
