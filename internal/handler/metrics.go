package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_viewer",
			Subsystem: "lookup",
			Name:      "submissions_total",
			Help:      "Total number of lookup submissions by outcome",
		},
		[]string{"outcome"},
	)

	lookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_viewer",
			Subsystem: "lookup",
			Name:      "duration_seconds",
			Help:      "Histogram of full lookup cycle durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	lookupsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_viewer",
			Subsystem: "lookup",
			Name:      "in_flight",
			Help:      "Number of lookups currently in flight",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		lookupsTotal,
		lookupDuration,
		lookupsInFlight,
	)
}
