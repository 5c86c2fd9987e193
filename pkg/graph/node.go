package graph

import "fmt"

// NodeID uniquely identifies a node within a graph.
type NodeID string

// Category classifies a node within a socio-technical network. It is pure
// metadata: reporting collaborators read it, the centrality engine never does.
type Category int

const (
	// CategoryUnknown is the zero value for nodes without a classification.
	CategoryUnknown Category = iota
	// CategoryTechnical covers devices and systems (PLCs, servers, switches).
	CategoryTechnical
	// CategoryHuman covers human operators, administrators and managers.
	CategoryHuman
	// CategoryProcess covers organisational processes (change management,
	// incident response, vendor access).
	CategoryProcess
)

// String returns the string representation of a category.
func (c Category) String() string {
	switch c {
	case CategoryTechnical:
		return "Technical"
	case CategoryHuman:
		return "Human"
	case CategoryProcess:
		return "Process"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a string to a Category. Matching is case-insensitive
// on the common spellings; anything unrecognised is an error.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Technical", "technical", "TECHNICAL":
		return CategoryTechnical, nil
	case "Human", "human", "HUMAN":
		return CategoryHuman, nil
	case "Process", "process", "PROCESS":
		return CategoryProcess, nil
	case "":
		return CategoryUnknown, nil
	default:
		return CategoryUnknown, fmt.Errorf("unknown node category %q", s)
	}
}

// Node is a graph vertex: an identifier plus its category tag.
type Node struct {
	ID       NodeID
	Category Category
}

// Edge is an unordered pair of distinct node identifiers.
type Edge struct {
	A NodeID
	B NodeID
}
