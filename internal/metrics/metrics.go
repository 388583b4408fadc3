// Package metrics exposes prometheus collectors for deal imports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels used by DealsProcessed.
const (
	OutcomeImported         = "imported"
	OutcomeDuplicate        = "duplicate"
	OutcomeDuplicateInBatch = "duplicate_in_batch"
	OutcomeInvalid          = "invalid"
	OutcomeFailed           = "failed"
)

var (
	DealsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fxdeals_deals_processed_total",
		Help: "Total number of deals processed, by outcome",
	}, []string{"outcome"})

	BatchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fxdeals_batches_processed_total",
		Help: "Total number of bulk import calls",
	})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fxdeals_batch_size",
		Help:    "Number of deals received per bulk import call",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	ImportLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fxdeals_import_latency_seconds",
		Help:    "Latency of a single deal unit of work",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordDeal counts one processed deal.
func RecordDeal(outcome string) {
	DealsProcessed.WithLabelValues(outcome).Inc()
}
