package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInputMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "surprise_graph_nodes",
			Help: "Nodes in the most recently loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "surprise_graph_edges",
			Help: "Edges in the most recently loaded graph",
		},
	)

	r.DroppedEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "surprise_dropped_edges_total",
			Help: "Edge-list lines that did not add an edge",
		},
		[]string{"reason"},
	)

	r.PartitionsScored = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "surprise_partitions_scored_total",
			Help: "Partitions scored successfully",
		},
	)

	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "surprise_runs_total",
			Help: "Batch scoring runs by outcome",
		},
		[]string{"status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "surprise_run_duration_seconds",
			Help:    "Wall time of a batch scoring run",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}

func (r *Registry) initSystemMetrics() {
	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "surprise_goroutines",
			Help: "Number of goroutines",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "surprise_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects",
		},
	)
}
