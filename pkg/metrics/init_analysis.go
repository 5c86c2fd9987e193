package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.ComputationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sociograph_computations_total",
			Help: "Total number of centrality computations",
		},
		[]string{"algorithm", "status"},
	)

	r.ComputationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sociograph_computation_duration_seconds",
			Help:    "Centrality computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"algorithm"},
	)

	r.SourcesProcessed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "sociograph_sources_processed_total",
			Help: "Total number of single-source passes completed",
		},
	)

	r.WorkersInUse = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_workers_in_use",
			Help: "Number of workers used by the most recent computation",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_nodes_total",
			Help: "Total number of nodes in the analysed graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "sociograph_graph_edges_total",
			Help: "Total number of undirected edges in the analysed graph",
		},
	)
}
