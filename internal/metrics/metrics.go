package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "direct_message"

var (
	SendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sends_total",
			Help:      "Total send attempts by app variant and outcome.",
		},
		[]string{"variant", "outcome"}, // outcome: success, invalid_number, app_unavailable
	)

	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Total scanned payloads by classified intent.",
		},
		[]string{"kind"}, // kind: intent kind or "suppressed"
	)

	StorageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_failures_total",
			Help:      "Persistence failures recovered by falling back to in-memory state.",
		},
		[]string{"store"},
	)

	OpenDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "open_duration_seconds",
			Help:      "Duration of URL-opener calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"variant"},
	)
)
