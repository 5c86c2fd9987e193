package centrality

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/sociograph/pkg/graph"
)

// randomGraph derives a graph from a pair list, discarding self loops and
// duplicates. Node count is fixed so every score map is fully populated.
func randomGraph(n int, pairs [][2]uint8) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(graph.Node{ID: graph.NodeID(fmt.Sprintf("n%d", i))})
	}
	for _, p := range pairs {
		a := graph.NodeID(fmt.Sprintf("n%d", int(p[0])%n))
		b := graph.NodeID(fmt.Sprintf("n%d", int(p[1])%n))
		g.AddEdge(a, b) // self loops and repeats rejected, which is fine
	}
	return g
}

func pairGen() gopter.Gen {
	return gen.SliceOf(gen.UInt8().Map(func(a uint8) [2]uint8 {
		return [2]uint8{a, a*31 + 7}
	}))
}

func TestCentralityProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("scores stay within [0,1]", prop.ForAll(
		func(pairs [][2]uint8) bool {
			g := randomGraph(12, pairs)
			for _, score := range ComputeBetweennessCentrality(g) {
				if score < 0.0 || score > 1.0 || math.IsNaN(score) {
					return false
				}
			}
			return true
		},
		pairGen(),
	))

	properties.Property("every node has an entry", prop.ForAll(
		func(pairs [][2]uint8) bool {
			g := randomGraph(12, pairs)
			return len(ComputeBetweennessCentrality(g)) == g.NodeCount()
		},
		pairGen(),
	))

	properties.Property("parallel matches sequential", prop.ForAll(
		func(pairs [][2]uint8) bool {
			g := randomGraph(12, pairs)

			sequential, err := Compute(context.Background(), g, Options{Workers: 1})
			if err != nil {
				return false
			}
			parallel, err := Compute(context.Background(), g, Options{Workers: 4})
			if err != nil {
				return false
			}

			for id, want := range sequential {
				if math.Abs(parallel[id]-want) > tolerance {
					return false
				}
			}
			return true
		},
		pairGen(),
	))

	properties.TestingRun(t)
}
