package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fidelidade_client",
			Name:      "http_requests_total",
			Help:      "Responses received from the backend, by method and status code.",
		},
		[]string{"method", "code"},
	)
)
