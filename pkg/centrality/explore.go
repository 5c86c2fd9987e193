package centrality

import (
	"github.com/dd0wney/sociograph/pkg/graph"
)

// shortestPaths is the single-source BFS structure for one source node:
// hop distances, shortest-path counts, predecessor lists and finish order.
type shortestPaths struct {
	source graph.NodeID
	order  []graph.NodeID                  // non-decreasing distance from source
	dist   map[graph.NodeID]int            // -1 marks unreached nodes
	sigma  map[graph.NodeID]float64        // number of shortest paths from source
	preds  map[graph.NodeID][]graph.NodeID // neighbours one hop closer to source
}

// exploreFrom runs an unweighted BFS from source. A neighbour first seen gets
// distance dist[v]+1; every rediscovery at that same distance accumulates
// sigma and records another predecessor. Discovery order at equal distance
// does not affect the result.
func exploreFrom(g *graph.Graph, source graph.NodeID) *shortestPaths {
	n := g.NodeCount()
	sp := &shortestPaths{
		source: source,
		order:  make([]graph.NodeID, 0, n),
		dist:   make(map[graph.NodeID]int, n),
		sigma:  make(map[graph.NodeID]float64, n),
		preds:  make(map[graph.NodeID][]graph.NodeID, n),
	}
	for _, id := range g.NodeIDs() {
		sp.dist[id] = -1
	}

	sp.dist[source] = 0
	sp.sigma[source] = 1.0

	queue := make([]graph.NodeID, 0, n)
	queue = append(queue, source)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		sp.order = append(sp.order, v)

		neighbors, err := g.Neighbors(v)
		if err != nil {
			continue
		}

		for _, w := range neighbors {
			if sp.dist[w] < 0 {
				sp.dist[w] = sp.dist[v] + 1
				queue = append(queue, w)
			}
			if sp.dist[w] == sp.dist[v]+1 {
				sp.sigma[w] += sp.sigma[v]
				sp.preds[w] = append(sp.preds[w], v)
			}
		}
	}

	return sp
}
