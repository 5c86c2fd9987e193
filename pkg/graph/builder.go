package graph

// Builder provides a fluent interface for assembling a graph from node and
// edge definitions. The first error aborts the build; subsequent calls are
// no-ops so callers can chain freely and check once at the end.
type Builder struct {
	graph *Graph
	err   error // captures first error for deferred checking
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{graph: New()}
}

// AddNode adds a single node.
func (b *Builder) AddNode(node Node) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.graph.AddNode(node)
	return b
}

// AddNodes adds multiple nodes.
func (b *Builder) AddNodes(nodes []Node) *Builder {
	for _, node := range nodes {
		b.AddNode(node)
		if b.err != nil {
			return b
		}
	}
	return b
}

// AddEdge adds a single undirected edge.
func (b *Builder) AddEdge(from, to NodeID) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.graph.AddEdge(from, to)
	return b
}

// AddEdges adds multiple undirected edges.
func (b *Builder) AddEdges(edges []Edge) *Builder {
	for _, e := range edges {
		b.AddEdge(e.A, e.B)
		if b.err != nil {
			return b
		}
	}
	return b
}

// Error returns any error that occurred during building.
func (b *Builder) Error() error {
	return b.err
}

// Build finalises the graph. No partial graph is ever returned: if any
// definition was rejected the whole build fails.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.graph, nil
}

// BuildGraph assembles and validates a graph from a node list and an edge
// list of unordered identifier pairs. This is the construction half of the
// engine's external surface; the other half is centrality.ComputeBetweennessCentrality.
func BuildGraph(nodes []Node, edges []Edge) (*Graph, error) {
	return NewBuilder().AddNodes(nodes).AddEdges(edges).Build()
}
