package sessionguard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fidelidade_client",
			Name:      "session_invalidations_total",
			Help:      "Responses that ended the local session, by HTTP status.",
		},
		[]string{"status"},
	)

	loginRedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fidelidade_client",
			Name:      "login_redirects_total",
			Help:      "Navigations to the login view triggered by an invalid session.",
		},
	)
)
