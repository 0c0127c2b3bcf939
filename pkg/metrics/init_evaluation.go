package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initEvaluationMetrics() {
	r.EvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "surprise_evaluations_total",
			Help: "Surprise evaluations by terminal state (converged, exhausted, rejected)",
		},
		[]string{"state"},
	)

	r.EvaluationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "surprise_evaluation_duration_seconds",
			Help:    "Time spent in a single tail summation",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
	)

	r.TailTerms = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "surprise_tail_terms",
			Help:    "Terms folded into the tail sum after the observed value",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
		},
	)

	r.PreconditionFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "surprise_precondition_failures_total",
			Help: "Statistics rejected before evaluation",
		},
	)

	r.DegenerateTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "surprise_degenerate_total",
			Help: "Evaluations whose tail sum ended at exactly zero",
		},
	)

	r.LastScore = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "surprise_last_score",
			Help: "Most recent Surprise per partition",
		},
		[]string{"partition"},
	)

	r.LastModularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "surprise_last_modularity",
			Help: "Most recent modularity per partition",
		},
		[]string{"partition"},
	)
}
