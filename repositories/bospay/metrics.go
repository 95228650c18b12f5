package bospay

import (
	// Go Internal Packages
	"time"

	// External Packages
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeNotFound     = "not_found"
	outcomeUnauthorized = "unauthorized"
	outcomeRemoteError  = "remote_error"
	outcomeNetworkError = "network_error"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bospay",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Requests issued to the BosPay backend by operation and outcome.",
	}, []string{"operation", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bospay",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Latency of BosPay backend requests by operation.",
	}, []string{"operation"})
)

func observe(op, outcome string, d time.Duration) {
	requestsTotal.WithLabelValues(op, outcome).Inc()
	requestDuration.WithLabelValues(op).Observe(d.Seconds())
}
