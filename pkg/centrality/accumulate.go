package centrality

import (
	"github.com/dd0wney/sociograph/pkg/graph"
)

// accumulateDependencies runs the backward sweep for one source: nodes are
// visited in reverse BFS finish order (farthest first), each predecessor v of
// w receives sigma[v]/sigma[w] * (1+delta[w]), and the finished per-source
// dependency of every node except the source is folded into raw.
//
// Dependency propagates strictly from higher to lower distance, so the single
// sweep aggregates the contribution of every node farther than v that routes
// through v.
//
// When edgeRaw is non-nil the same contributions are also credited to the
// undirected edge (v, w), which yields edge betweenness from the same pass.
func accumulateDependencies(sp *shortestPaths, raw map[graph.NodeID]float64, edgeRaw map[graph.Edge]float64) {
	delta := make(map[graph.NodeID]float64, len(sp.order))

	for i := len(sp.order) - 1; i >= 0; i-- {
		w := sp.order[i]
		for _, v := range sp.preds[w] {
			contribution := (sp.sigma[v] / sp.sigma[w]) * (1.0 + delta[w])
			delta[v] += contribution
			if edgeRaw != nil {
				edgeRaw[graph.NewEdge(v, w)] += contribution
			}
		}
		if w != sp.source {
			raw[w] += delta[w]
		}
	}
}
