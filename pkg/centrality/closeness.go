package centrality

import (
	"github.com/dd0wney/sociograph/pkg/graph"
)

// ComputeClosenessCentrality computes closeness centrality for all nodes:
// reachable node count divided by the total hop distance to those nodes.
// Nodes that reach nothing score zero, so disconnected graphs need no
// special casing.
func ComputeClosenessCentrality(g *graph.Graph) Result {
	result := make(Result, g.NodeCount())

	for _, source := range g.NodeIDs() {
		sp := exploreFrom(g, source)

		totalDistance := 0
		reachable := 0
		for _, d := range sp.dist {
			if d > 0 {
				totalDistance += d
				reachable++
			}
		}

		if totalDistance > 0 {
			result[source] = float64(reachable) / float64(totalDistance)
		} else {
			result[source] = 0.0
		}
	}

	return result
}
