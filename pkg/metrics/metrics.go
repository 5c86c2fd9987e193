// Package metrics provides Prometheus instrumentation for centrality
// computations.
package metrics

import (
	"time"
)

// RecordComputation records a finished centrality computation with its duration
func (r *Registry) RecordComputation(algorithm, status string, duration time.Duration) {
	r.ComputationsTotal.WithLabelValues(algorithm, status).Inc()
	r.ComputationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordSources adds completed single-source passes to the running total
func (r *Registry) RecordSources(n int) {
	r.SourcesProcessed.Add(float64(n))
}

// SetWorkers records the worker count used by the most recent computation
func (r *Registry) SetWorkers(n int) {
	r.WorkersInUse.Set(float64(n))
}

// UpdateGraphMetrics updates graph size gauges
func (r *Registry) UpdateGraphMetrics(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}
