package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yaus_redirects_total",
		Help: "Redirect resolution attempts by outcome.",
	}, []string{"status"})

	AuthChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yaus_auth_checks_total",
		Help: "Credential gate decisions on the management API.",
	}, []string{"outcome"})

	RedirectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "yaus_redirect_duration_seconds",
		Help:    "Time from request receipt to redirect response.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
	})
)
