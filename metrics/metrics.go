// Package metrics exposes Prometheus instrumentation for the registry API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_signups_total",
			Help: "Total number of successful signups",
		},
		[]string{"activity"},
	)

	UnregistersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_unregisters_total",
			Help: "Total number of successful unregisters",
		},
		[]string{"activity"},
	)

	RejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activities_rejections_total",
			Help: "Total number of rejected roster mutations",
		},
		[]string{"reason"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "activities_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"handler"},
	)
)
