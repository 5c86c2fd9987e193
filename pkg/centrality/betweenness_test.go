package centrality

import (
	"context"
	"math"
	"testing"

	"github.com/dd0wney/sociograph/pkg/graph"
)

const tolerance = 1e-9

// buildTestGraph assembles a graph from identifier and pair lists.
func buildTestGraph(t *testing.T, ids []string, pairs [][2]string) *graph.Graph {
	t.Helper()

	nodes := make([]graph.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, graph.Node{ID: graph.NodeID(id)})
	}
	edges := make([]graph.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, graph.Edge{A: graph.NodeID(p[0]), B: graph.NodeID(p[1])})
	}

	g, err := graph.BuildGraph(nodes, edges)
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}
	return g
}

func TestBetweenness_PathGraph(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}})

	result := ComputeBetweennessCentrality(g)

	if math.Abs(result["b"]-1.0) > tolerance {
		t.Errorf("Expected middle node score 1.0, got %f", result["b"])
	}
	if result["a"] != 0.0 || result["c"] != 0.0 {
		t.Errorf("Expected endpoint scores 0.0, got %f and %f", result["a"], result["c"])
	}
}

func TestBetweenness_StarGraph(t *testing.T) {
	ids := []string{"hub", "l1", "l2", "l3", "l4", "l5"}
	pairs := [][2]string{{"hub", "l1"}, {"hub", "l2"}, {"hub", "l3"}, {"hub", "l4"}, {"hub", "l5"}}
	g := buildTestGraph(t, ids, pairs)

	result := ComputeBetweennessCentrality(g)

	if math.Abs(result["hub"]-1.0) > tolerance {
		t.Errorf("Expected hub score 1.0, got %f", result["hub"])
	}
	for _, leaf := range ids[1:] {
		if result[graph.NodeID(leaf)] != 0.0 {
			t.Errorf("Expected leaf %s score 0.0, got %f", leaf, result[graph.NodeID(leaf)])
		}
	}
}

func TestBetweenness_CompleteGraph(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	pairs := [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}, {"b", "c"}, {"b", "d"}, {"c", "d"}}
	g := buildTestGraph(t, ids, pairs)

	result := ComputeBetweennessCentrality(g)

	// No shortest path is longer than one hop, so nothing lies between.
	for id, score := range result {
		if score != 0.0 {
			t.Errorf("Expected score 0.0 for %s in complete graph, got %f", id, score)
		}
	}
}

func TestBetweenness_TinyGraphs(t *testing.T) {
	single := buildTestGraph(t, []string{"only"}, nil)
	result := ComputeBetweennessCentrality(single)
	if len(result) != 1 || result["only"] != 0.0 {
		t.Errorf("Expected single zero entry, got %v", result)
	}

	pair := buildTestGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	result = ComputeBetweennessCentrality(pair)
	for id, score := range result {
		if score != 0.0 {
			t.Errorf("Expected score 0.0 for %s in 2-node graph, got %f", id, score)
		}
	}
	if len(result) != 2 {
		t.Errorf("Expected entries for both nodes, got %d", len(result))
	}
}

func TestBetweenness_DisjointTriangles(t *testing.T) {
	ids := []string{"a", "b", "c", "x", "y", "z"}
	pairs := [][2]string{
		{"a", "b"}, {"b", "c"}, {"a", "c"},
		{"x", "y"}, {"y", "z"}, {"x", "z"},
	}
	g := buildTestGraph(t, ids, pairs)

	result := ComputeBetweennessCentrality(g)

	// Within a clique no betweenness exists, and components contribute
	// nothing to each other.
	for id, score := range result {
		if score != 0.0 {
			t.Errorf("Expected score 0.0 for %s, got %f", id, score)
		}
	}
	if len(result) != 6 {
		t.Errorf("Expected 6 entries, got %d", len(result))
	}
}

func TestBetweenness_IsolatedNodeGetsZeroEntry(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c", "island"},
		[][2]string{{"a", "b"}, {"b", "c"}})

	result := ComputeBetweennessCentrality(g)

	score, ok := result["island"]
	if !ok {
		t.Fatal("Expected an entry for the isolated node")
	}
	if score != 0.0 {
		t.Errorf("Expected isolated node score 0.0, got %f", score)
	}
}

func TestBetweenness_BridgeEffect(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f"}
	bridged := [][2]string{
		{"a", "b"}, {"b", "c"}, {"a", "c"}, // left triangle
		{"d", "e"}, {"e", "f"}, {"d", "f"}, // right triangle
		{"c", "d"}, // the only crossing
	}
	g := buildTestGraph(t, ids, bridged)
	result := ComputeBetweennessCentrality(g)

	// Variant with a redundant alternate crossing between the halves.
	redundant := append(append([][2]string{}, bridged...), [2]string{"b", "e"})
	g2 := buildTestGraph(t, ids, redundant)
	result2 := ComputeBetweennessCentrality(g2)

	if result2["c"] >= result["c"] {
		t.Errorf("Expected bridge endpoint c to drop with alternate path: %f -> %f", result["c"], result2["c"])
	}
	if result2["d"] >= result["d"] {
		t.Errorf("Expected bridge endpoint d to drop with alternate path: %f -> %f", result["d"], result2["d"])
	}
}

func TestBetweenness_ScoresWithinUnitInterval(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}, {"a", "e"}})

	for id, score := range ComputeBetweennessCentrality(g) {
		if score < 0.0 || score > 1.0 {
			t.Errorf("Score for %s outside [0,1]: %f", id, score)
		}
	}
}

func TestCompute_DeterministicAcrossWorkerCounts(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	pairs := [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"},
		{"e", "f"}, {"f", "g"}, {"g", "h"}, {"h", "a"},
		{"a", "e"}, {"b", "f"},
	}
	g := buildTestGraph(t, ids, pairs)

	sequential, err := Compute(context.Background(), g, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Sequential compute failed: %v", err)
	}

	for _, workers := range []int{2, 4, 8} {
		parallel, err := Compute(context.Background(), g, Options{Workers: workers})
		if err != nil {
			t.Fatalf("Compute with %d workers failed: %v", workers, err)
		}
		for id, want := range sequential {
			if math.Abs(parallel[id]-want) > tolerance {
				t.Errorf("Workers=%d: score for %s differs: %f vs %f", workers, id, parallel[id], want)
			}
		}
	}
}

func TestCompute_Cancellation(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Compute(ctx, g, Options{}); err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestCompute_InvalidOptions(t *testing.T) {
	g := buildTestGraph(t, []string{"a"}, nil)

	_, err := Compute(context.Background(), g, Options{Workers: int(^uint(0) >> 1)})
	if err == nil {
		t.Error("Expected error for absurd worker count")
	}
}

func TestCompute_FreshResultPerCall(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}})

	first := ComputeBetweennessCentrality(g)
	first["b"] = 42.0 // caller owns the result

	second := ComputeBetweennessCentrality(g)
	if math.Abs(second["b"]-1.0) > tolerance {
		t.Errorf("Expected fresh result per call, got %f", second["b"])
	}
}
