// Package report turns centrality results into rankings, summary statistics
// and rendered output. It is a consumer of the engine: nothing here feeds
// back into the computation.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/sociograph/pkg/centrality"
	"github.com/dd0wney/sociograph/pkg/graph"
)

// RankedNode is one row of a centrality ranking.
type RankedNode struct {
	Rank     int          `json:"rank"`
	ID       graph.NodeID `json:"id"`
	Score    float64      `json:"score"`
	Category string       `json:"category"`
}

// Rank sorts a result by descending score, ties broken by node identifier
// ascending so output is deterministic across runs.
func Rank(g *graph.Graph, result centrality.Result) []RankedNode {
	rankings := make([]RankedNode, 0, len(result))
	for id, score := range result {
		category := graph.CategoryUnknown
		if node, err := g.Node(id); err == nil {
			category = node.Category
		}
		rankings = append(rankings, RankedNode{
			ID:       id,
			Score:    score,
			Category: category.String(),
		})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Score != rankings[j].Score {
			return rankings[i].Score > rankings[j].Score
		}
		return rankings[i].ID < rankings[j].ID
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// Summary holds a full analysis of one model: the ranking plus the
// invisible-node statistics (how much structural criticality sits on human
// and process nodes rather than on equipment).
type Summary struct {
	Model          string       `json:"model"`
	RunID          string       `json:"run_id,omitempty"`
	NodeCount      int          `json:"node_count"`
	EdgeCount      int          `json:"edge_count"`
	Rankings       []RankedNode `json:"rankings"`
	InvisibleShare float64      `json:"invisible_share"`
	TopInvisible   string       `json:"top_invisible_node,omitempty"`
	TopInvisibleBC float64      `json:"top_invisible_score"`
	TopTechnical   string       `json:"top_technical_node,omitempty"`
	TopTechnicalBC float64      `json:"top_technical_score"`
	// Multiplier is top invisible score over top technical score: how many
	// times more critical the most central person or process is than the most
	// central piece of equipment.
	Multiplier float64 `json:"invisible_multiplier"`
}

// Summarize builds a Summary from a graph and its betweenness result.
func Summarize(g *graph.Graph, result centrality.Result, model, runID string) Summary {
	rankings := Rank(g, result)

	totalBC := 0.0
	invisibleBC := 0.0
	var topInvisible, topTechnical RankedNode
	for _, r := range rankings {
		totalBC += r.Score
		switch r.Category {
		case "Human", "Process":
			invisibleBC += r.Score
			if topInvisible.ID == "" || r.Score > topInvisible.Score {
				topInvisible = r
			}
		case "Technical":
			if topTechnical.ID == "" || r.Score > topTechnical.Score {
				topTechnical = r
			}
		}
	}

	invisibleShare := 0.0
	if totalBC > 0 {
		invisibleShare = invisibleBC / totalBC
	}
	multiplier := 0.0
	if topTechnical.Score > 0 {
		multiplier = topInvisible.Score / topTechnical.Score
	}

	return Summary{
		Model:          model,
		RunID:          runID,
		NodeCount:      g.NodeCount(),
		EdgeCount:      g.EdgeCount(),
		Rankings:       rankings,
		InvisibleShare: invisibleShare,
		TopInvisible:   string(topInvisible.ID),
		TopInvisibleBC: topInvisible.Score,
		TopTechnical:   string(topTechnical.ID),
		TopTechnicalBC: topTechnical.Score,
		Multiplier:     multiplier,
	}
}

// GoLiteral renders a result as a copy-pasteable Go map literal, sorted by
// descending score with identifier tiebreak. The output feeds
// cross-implementation tests: another implementation can assert against it
// directly.
func GoLiteral(g *graph.Graph, result centrality.Result) string {
	rankings := Rank(g, result)

	var b strings.Builder
	b.WriteString("expected := map[string]float64{\n")
	for _, r := range rankings {
		fmt.Fprintf(&b, "\t%q: %.4f,\n", string(r.ID), r.Score)
	}
	b.WriteString("}\n")
	return b.String()
}
