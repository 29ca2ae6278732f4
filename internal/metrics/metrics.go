package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AffordancesOffered tracks checks rendered with the reroll button
	AffordancesOffered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emergency_d20_affordances_offered_total",
			Help: "Total number of checks rendered with an emergency reroll button",
		},
	)

	// ChecksSkipped tracks checks rendered without the button, by reason
	ChecksSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emergency_d20_checks_skipped_total",
			Help: "Total number of checks not offered an emergency reroll",
		},
		[]string{"reason"},
	)

	// RerollsCompleted tracks successful emergency rerolls by pool kind
	RerollsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emergency_d20_rerolls_completed_total",
			Help: "Total number of emergency rerolls published",
		},
		[]string{"pool"},
	)

	// RerollsRejected tracks rerolls that stopped before publication, by state and reason
	RerollsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emergency_d20_rerolls_rejected_total",
			Help: "Total number of emergency rerolls rejected",
		},
		[]string{"state", "reason"},
	)

	// RerollDuration tracks how long an emergency reroll takes end to end
	RerollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "emergency_d20_reroll_duration_seconds",
			Help:    "Emergency reroll latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
