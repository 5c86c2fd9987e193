package centrality

import (
	"github.com/dd0wney/sociograph/pkg/graph"
)

// ComputeDegreeCentrality computes degree centrality for all nodes: each
// node's neighbour count scaled by 1/(n-1). Graphs with fewer than two nodes
// score zero everywhere.
func ComputeDegreeCentrality(g *graph.Graph) Result {
	n := g.NodeCount()
	result := make(Result, n)

	for _, id := range g.NodeIDs() {
		degree, err := g.Degree(id)
		if err != nil {
			continue
		}
		if n > 1 {
			result[id] = float64(degree) / float64(n-1)
		} else {
			result[id] = 0.0
		}
	}

	return result
}
