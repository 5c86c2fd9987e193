package centrality

import (
	"context"
	"time"

	"github.com/dd0wney/sociograph/pkg/graph"
	"github.com/dd0wney/sociograph/pkg/logging"
)

// EdgeResult maps each undirected edge (in canonical pair order) to its
// normalised edge betweenness centrality.
type EdgeResult map[graph.Edge]float64

// ComputeEdgeBetweennessCentrality computes betweenness centrality for all
// edges of g with default options. It shares the Brandes pass with the node
// computation: back-propagated contributions are credited to the edge that
// carried them.
func ComputeEdgeBetweennessCentrality(g *graph.Graph) EdgeResult {
	result, _ := ComputeEdges(context.Background(), g, Options{})
	return result
}

// ComputeEdges computes normalised edge betweenness for every edge of g.
func ComputeEdges(ctx context.Context, g *graph.Graph, opts Options) (EdgeResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	edgeRaw := make(map[graph.Edge]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		edgeRaw[e] = 0.0
	}

	if _, err := rawBetweenness(ctx, g, opts, edgeRaw); err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordComputation("edge_betweenness", "cancelled", time.Since(start))
		}
		return nil, err
	}

	// Every unordered pair was counted from both endpoints, and there are
	// n(n-1)/2 pairs an undirected edge can serve.
	n := g.NodeCount()
	result := make(EdgeResult, len(edgeRaw))
	if n > 1 {
		factor := 2.0 / float64(n*(n-1))
		for e, value := range edgeRaw {
			result[e] = (value / 2.0) * factor
		}
	} else {
		for e := range edgeRaw {
			result[e] = 0.0
		}
	}

	if opts.Metrics != nil {
		opts.Metrics.RecordComputation("edge_betweenness", "success", time.Since(start))
	}
	opts.logger().Debug("edge betweenness centrality computed",
		logging.Component("centrality"),
		logging.Count(len(result)),
		logging.Latency(time.Since(start)))

	return result, nil
}
