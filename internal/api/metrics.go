package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extmarket_client",
			Name:      "requests_total",
			Help:      "Marketplace API round trips by operation and HTTP status code.",
		},
		[]string{"operation", "code"},
	)

	requestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "extmarket_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed before an HTTP status was received.",
		},
		[]string{"operation"},
	)
)
