// Package core - fundamental value types for benchmark graph instances.
//
// This file declares Edge, EdgeSet, VertexSet, Graph, and the sentinel
// errors shared across cliquegen. Behavioral methods live in edgeset.go
// and graph.go.
package core

import "errors"

// Sentinel errors for core graph invariants.
var (
	// ErrSelfLoop indicates both endpoints of an edge are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop is not a valid edge")

	// ErrNegativeVertex indicates an endpoint id below zero.
	ErrNegativeVertex = errors.New("core: negative vertex id")

	// ErrVertexRange indicates an edge endpoint outside [0, VertexCount).
	ErrVertexRange = errors.New("core: edge endpoint outside vertex range")

	// ErrBadVertexCount indicates a non-positive VertexCount.
	ErrBadVertexCount = errors.New("core: vertex count must be positive")
)

// Edge is an unordered vertex pair in canonical form: U < V always holds
// for edges built through NewEdge. The zero Edge (0,0) is not valid.
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint.
	V int
}

// NewEdge returns the canonical form of the undirected pair {u, v}.
// It rejects self-loops (ErrSelfLoop) and negative ids (ErrNegativeVertex);
// generators rely on this single choke point for both invariants.
//
// Complexity: O(1).
func NewEdge(u, v int) (Edge, error) {
	if u < 0 || v < 0 {
		return Edge{}, ErrNegativeVertex
	}
	if u == v {
		return Edge{}, ErrSelfLoop
	}
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}, nil
}

// Less reports whether e precedes o in the canonical (U, V) lexicographic
// order used by EdgeSet.Sorted.
func (e Edge) Less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// EdgeSet is the canonical undirected-edge container: each unordered pair
// appears at most once, keyed by its canonical Edge. The map form gives
// O(1) membership and natural deduplication of repeated stochastic draws.
type EdgeSet map[Edge]struct{}

// VertexSet is a set of vertex ids; the CNF reduction returns one per clause.
type VertexSet map[int]struct{}

// Graph couples a dense vertex range [0, VertexCount) with its edge set.
// It is a value object: constructed once, then handed around by value or
// immutable shared ownership.
type Graph struct {
	// VertexCount is the size of the dense vertex range.
	VertexCount int

	// Edges holds every undirected edge exactly once, canonically.
	Edges EdgeSet
}
