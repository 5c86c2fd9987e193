// Package graph provides the undirected node/edge store used by the
// centrality engine. A Graph is assembled once from node and edge lists,
// validated as it is built, and treated as read-only afterwards.
package graph

// Graph is a set of nodes plus a symmetric adjacency mapping. It is not safe
// for concurrent mutation; once construction is complete it may be read from
// any number of goroutines.
type Graph struct {
	nodes     map[NodeID]Node
	adjacency map[NodeID][]NodeID
	edgeSet   map[Edge]struct{} // canonical (min, max) pairs for duplicate detection
	edgeCount int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]Node),
		adjacency: make(map[NodeID][]NodeID),
		edgeSet:   make(map[Edge]struct{}),
	}
}

// canonical orders an unordered pair so that (a,b) and (b,a) map to the same key.
func canonical(a, b NodeID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// NewEdge returns the canonical representation of an unordered pair.
func NewEdge(a, b NodeID) Edge {
	return canonical(a, b)
}

// AddNode inserts a node with an empty neighbour set.
// Fails with ErrDuplicateNode if the identifier is already present.
func (g *Graph) AddNode(node Node) error {
	if _, exists := g.nodes[node.ID]; exists {
		return nodeError("AddNode", node.ID, ErrDuplicateNode)
	}
	g.nodes[node.ID] = node
	g.adjacency[node.ID] = nil
	return nil
}

// AddEdge inserts an undirected edge between two existing, distinct nodes.
// The symmetric adjacency update is atomic from the caller's perspective:
// either both directions are recorded or neither is.
func (g *Graph) AddEdge(a, b NodeID) error {
	if _, exists := g.nodes[a]; !exists {
		return edgeError("AddEdge", a, b, ErrUnknownNode)
	}
	if _, exists := g.nodes[b]; !exists {
		return edgeError("AddEdge", a, b, ErrUnknownNode)
	}
	if a == b {
		return edgeError("AddEdge", a, b, ErrSelfLoop)
	}
	key := canonical(a, b)
	if _, exists := g.edgeSet[key]; exists {
		return edgeError("AddEdge", a, b, ErrDuplicateEdge)
	}

	g.edgeSet[key] = struct{}{}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	g.edgeCount++
	return nil
}

// Neighbors returns the identifiers adjacent to the given node, in edge
// insertion order. The returned slice is shared with the graph and must not
// be modified. Fails with ErrUnknownNode if the node is absent.
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if _, exists := g.nodes[id]; !exists {
		return nil, nodeError("Neighbors", id, ErrUnknownNode)
	}
	return g.adjacency[id], nil
}

// HasNode reports whether the identifier is present.
func (g *Graph) HasNode(id NodeID) bool {
	_, exists := g.nodes[id]
	return exists
}

// HasEdge reports whether the unordered pair is present.
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, exists := g.edgeSet[canonical(a, b)]
	return exists
}

// Node returns the node record for an identifier.
func (g *Graph) Node(id NodeID) (Node, error) {
	node, exists := g.nodes[id]
	if !exists {
		return Node{}, nodeError("Node", id, ErrUnknownNode)
	}
	return node, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// NodeIDs returns all node identifiers. Map iteration order applies; callers
// that need determinism sort the result themselves.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	return ids
}

// Edges returns all undirected edges as canonical pairs.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeSet))
	for e := range g.edgeSet {
		edges = append(edges, e)
	}
	return edges
}

// Degree returns the number of neighbours of a node.
func (g *Graph) Degree(id NodeID) (int, error) {
	if _, exists := g.nodes[id]; !exists {
		return 0, nodeError("Degree", id, ErrUnknownNode)
	}
	return len(g.adjacency[id]), nil
}
