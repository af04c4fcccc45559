package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dqcli_http_requests_total",
		Help: "HTTP requests served, by route and status code.",
	}, []string{"route", "status"})

	validationRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dqcli_validation_runs_total",
		Help: "Validation runs executed over HTTP.",
	})

	violationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dqcli_violations_total",
		Help: "Violations found by validation runs executed over HTTP.",
	})

	validationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dqcli_validation_duration_seconds",
		Help:    "Wall time of validation runs executed over HTTP.",
		Buckets: prometheus.DefBuckets,
	})
)
