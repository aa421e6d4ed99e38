// Package metrics registers the engine's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors the modules record into.
type Metrics struct {
	QueueDepth       *prometheus.GaugeVec
	MatchesFormed    *prometheus.CounterVec
	MatchesFinalized *prometheus.CounterVec
	RatingDelta      prometheus.Histogram
	RetriedConflicts prometheus.Counter
}

// New creates the collectors and registers them on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QueueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rbw",
			Subsystem: "queue",
			Name:      "depth",
			Help:      "Players currently waiting in the queue, per guild.",
		}, []string{"guild_id"}),
		MatchesFormed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbw",
			Subsystem: "match",
			Name:      "formed_total",
			Help:      "Matches formed, per guild.",
		}, []string{"guild_id"}),
		MatchesFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rbw",
			Subsystem: "match",
			Name:      "finalized_total",
			Help:      "Matches finalized, per guild and outcome.",
		}, []string{"guild_id", "outcome"}),
		RatingDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rbw",
			Subsystem: "rating",
			Name:      "delta",
			Help:      "Absolute team rating delta applied at finalization.",
			Buckets:   prometheus.LinearBuckets(0, 4, 12),
		}),
		RetriedConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rbw",
			Subsystem: "storage",
			Name:      "retried_conflicts_total",
			Help:      "Write conflicts that were retried.",
		}),
	}

	reg.MustRegister(
		m.QueueDepth,
		m.MatchesFormed,
		m.MatchesFinalized,
		m.RatingDelta,
		m.RetriedConflicts,
	)
	return m
}

// NewNoOp returns collectors backed by a private registry, for tests.
func NewNoOp() *Metrics {
	return New(prometheus.NewRegistry())
}
