package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the counters the call pipeline reports. One instance is
// created at startup and shared through constructors.
type Metrics struct {
	CallsPlaced         prometheus.Counter
	PlacementFailures   prometheus.Counter
	WebhooksReceived    *prometheus.CounterVec
	OutcomesRecorded    *prometheus.CounterVec
	StaleTransitions    prometheus.Counter
	UnknownReferences   prometheus.Counter
	GenerationFallbacks prometheus.Counter
}

// New registers and returns the pipeline metrics.
func New() *Metrics {
	return &Metrics{
		CallsPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reminder_calls_placed_total",
			Help: "Total number of reminder calls successfully placed",
		}),
		PlacementFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reminder_placement_failures_total",
			Help: "Total number of call placements that were refused or timed out",
		}),
		WebhooksReceived: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "voice_webhooks_received_total",
			Help: "Total number of provider webhooks received",
		}, []string{"kind"}),
		OutcomesRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "call_outcomes_recorded_total",
			Help: "Total number of in-call outcomes recorded",
		}, []string{"outcome"}),
		StaleTransitions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reminder_stale_transitions_total",
			Help: "Total number of duplicate or out-of-order events absorbed as no-ops",
		}),
		UnknownReferences: promauto.NewCounter(prometheus.CounterOpts{
			Name: "voice_unknown_references_total",
			Help: "Total number of delivery events with no matching reminder",
		}),
		GenerationFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "script_generation_fallbacks_total",
			Help: "Total number of calls that used the static fallback script",
		}),
	}
}
