package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Analysis Metrics
	ComputationsTotal   *prometheus.CounterVec
	ComputationDuration *prometheus.HistogramVec
	SourcesProcessed    prometheus.Counter
	WorkersInUse        prometheus.Gauge

	// Graph Metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// NewRegistry creates a new metrics registry with all metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initAnalysisMetrics()
	r.initGraphMetrics()
	return r
}

// Default returns the global registry instance
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// PrometheusRegistry returns the underlying prometheus registry for exposition
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
