package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors, all raised during graph construction. The
// computation phase never fails on a valid graph.
var (
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("unknown node")
	ErrSelfLoop      = errors.New("self loop")
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op    string // Operation that failed (e.g., "AddNode", "AddEdge")
	Node  NodeID // Node involved (for node operations and lookups)
	From  NodeID // Edge endpoint (for edge operations)
	To    NodeID // Edge endpoint (for edge operations)
	Cause error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.From != "" || e.To != "" {
		return fmt.Sprintf("%s (%s, %s): %v", e.Op, e.From, e.To, e.Cause)
	}
	if e.Node != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Node, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func nodeError(op string, id NodeID, cause error) error {
	return &GraphError{Op: op, Node: id, Cause: cause}
}

func edgeError(op string, from, to NodeID, cause error) error {
	return &GraphError{Op: op, From: from, To: to, Cause: cause}
}
