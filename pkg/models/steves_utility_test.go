package models

import (
	"testing"

	"github.com/dd0wney/sociograph/pkg/graph"
)

func TestStevesUtility_Shape(t *testing.T) {
	g, err := StevesUtility()
	if err != nil {
		t.Fatalf("Failed to build model: %v", err)
	}

	if g.NodeCount() != 33 {
		t.Errorf("Expected 33 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 70 {
		t.Errorf("Expected 70 edges, got %d", g.EdgeCount())
	}
}

func TestStevesUtility_CategoryBreakdown(t *testing.T) {
	counts := map[graph.Category]int{}
	for _, n := range StevesUtilityNodes {
		counts[n.Category]++
	}

	if counts[graph.CategoryTechnical] != 22 {
		t.Errorf("Expected 22 technical nodes, got %d", counts[graph.CategoryTechnical])
	}
	if counts[graph.CategoryHuman] != 7 {
		t.Errorf("Expected 7 human nodes, got %d", counts[graph.CategoryHuman])
	}
	if counts[graph.CategoryProcess] != 4 {
		t.Errorf("Expected 4 process nodes, got %d", counts[graph.CategoryProcess])
	}
}

func TestStevesUtility_SteveDegree(t *testing.T) {
	g, err := StevesUtility()
	if err != nil {
		t.Fatalf("Failed to build model: %v", err)
	}

	degree, err := g.Degree("Steve")
	if err != nil {
		t.Fatalf("Failed to get degree: %v", err)
	}
	if degree != 23 {
		t.Errorf("Expected Steve to touch 23 nodes, got %d", degree)
	}
}

func TestStevesUtilityWithoutSteve(t *testing.T) {
	g, err := StevesUtilityWithoutSteve()
	if err != nil {
		t.Fatalf("Failed to build model: %v", err)
	}

	if g.NodeCount() != 32 {
		t.Errorf("Expected 32 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 47 {
		t.Errorf("Expected 47 edges, got %d", g.EdgeCount())
	}
	if g.HasNode("Steve") {
		t.Error("Expected Steve to be absent")
	}
}
