package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

// ExportJSON writes a summary to a JSON file.
func ExportJSON(summary Summary, filename string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// RemovalChange is the before/after effect of removing a node on one
// remaining node.
type RemovalChange struct {
	ID       string  `json:"id"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
	Delta    float64 `json:"delta"`
	DeltaPct float64 `json:"delta_pct"`
}

// CompareRemoval computes per-node score changes between a baseline summary
// and a summary of the same model with one node removed. Results are sorted
// by absolute change, largest first.
func CompareRemoval(before, after Summary) []RemovalChange {
	beforeMap := make(map[string]float64, len(before.Rankings))
	for _, r := range before.Rankings {
		beforeMap[string(r.ID)] = r.Score
	}

	changes := make([]RemovalChange, 0, len(after.Rankings))
	for _, r := range after.Rankings {
		b := beforeMap[string(r.ID)]
		delta := r.Score - b
		pct := 0.0
		if b > 0 {
			pct = (delta / b) * 100
		}
		changes = append(changes, RemovalChange{
			ID:       string(r.ID),
			Before:   b,
			After:    r.Score,
			Delta:    delta,
			DeltaPct: pct,
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		return math.Abs(changes[i].Delta) > math.Abs(changes[j].Delta)
	})
	return changes
}
