// Package metrics provides Prometheus metrics for the draft service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DraftOperationsTotal tracks draft store calls by operation and result.
	DraftOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatorhub",
			Subsystem: "drafts",
			Name:      "operations_total",
			Help:      "Total number of draft store operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// DraftCacheLookupsTotal tracks cache hits and misses on draft load.
	DraftCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatorhub",
			Subsystem: "drafts",
			Name:      "cache_lookups_total",
			Help:      "Draft cache lookups by result",
		},
		[]string{"result"},
	)

	// StepCompletionsTotal tracks step completion outcomes (saved, failed, timeout).
	StepCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatorhub",
			Subsystem: "wizard",
			Name:      "step_completions_total",
			Help:      "Wizard step completions by step and autosave outcome",
		},
		[]string{"step", "outcome"},
	)

	// StepSaveDuration tracks how long the autosave took before it settled or lost the race.
	StepSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "creatorhub",
			Subsystem: "wizard",
			Name:      "step_save_duration_seconds",
			Help:      "Duration of step autosave races in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// NoticesPublishedTotal tracks notices handed to the notice queue.
	NoticesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatorhub",
			Subsystem: "notices",
			Name:      "published_total",
			Help:      "Wizard notices published by kind and status",
		},
		[]string{"kind", "status"},
	)

	// ActiveWizardSessions tracks wizard sessions held in memory.
	ActiveWizardSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "creatorhub",
			Subsystem: "wizard",
			Name:      "active_sessions",
			Help:      "Number of wizard sessions held in memory",
		},
	)
)
