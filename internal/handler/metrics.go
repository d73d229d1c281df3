package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reconcileProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "requests_processed_total",
			Help:      "Total number of successfully processed reconcile requests",
		},
	)

	reconcileSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "requests_skipped_total",
			Help:      "Total number of reconcile requests for orders that are no longer degraded",
		},
	)

	reconcileFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "requests_failed_total",
			Help:      "Total number of failed reconcile attempts",
		},
	)

	reconcileDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "requests_dlq_total",
			Help:      "Total number of reconcile requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "request_duration_seconds",
			Help:      "Histogram of reconcile request durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	reconcileInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "green_basket",
			Subsystem: "reconcile_consumer",
			Name:      "requests_in_progress",
			Help:      "Number of reconcile requests currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		reconcileProcessed,
		reconcileSkipped,
		reconcileFailed,
		reconcileDLQ,
		commitErrors,
		reconcileDuration,
		reconcileInProgress,
	)
}
