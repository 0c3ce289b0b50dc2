package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movieguess_requests_total",
		Help: "Game requests served, by route and HTTP status.",
	}, []string{"route", "status"})

	completionSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movieguess_completion_seconds",
		Help:    "Wall time of external completion calls, by mode.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})
)
