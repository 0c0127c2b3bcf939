package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Evaluation states used as the "state" label
const (
	StateRejected = "rejected"
)

// RecordEvaluation records a completed tail summation
func (r *Registry) RecordEvaluation(state string, terms int, degenerate bool, duration time.Duration) {
	r.EvaluationsTotal.WithLabelValues(state).Inc()
	r.EvaluationDuration.Observe(duration.Seconds())
	r.TailTerms.Observe(float64(terms))
	if degenerate {
		r.DegenerateTotal.Inc()
	}
}

// RecordRejection records statistics that failed validation
func (r *Registry) RecordRejection() {
	r.EvaluationsTotal.WithLabelValues(StateRejected).Inc()
	r.PreconditionFailures.Inc()
}

// RecordPartition records the scores of a named partition
func (r *Registry) RecordPartition(name string, score, modularity float64) {
	r.LastScore.WithLabelValues(name).Set(score)
	r.LastModularity.WithLabelValues(name).Set(modularity)
	r.PartitionsScored.Inc()
}

// RecordGraph records the size of a loaded graph and the lines it dropped
func (r *Registry) RecordGraph(nodes, edges, selfLoops, duplicates int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.DroppedEdgesTotal.WithLabelValues("self_loop").Add(float64(selfLoops))
	r.DroppedEdgesTotal.WithLabelValues("duplicate").Add(float64(duplicates))
}

// RecordRun records a batch scoring run
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
}

// UpdateSystemMetrics samples runtime statistics
func (r *Registry) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}

// WriteTextfile writes every metric to path in the Prometheus text format,
// for collection by a node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.UpdateSystemMetrics()
	return prometheus.WriteToTextfile(path, r.registry)
}
