package core

import "fmt"

// NewGraph returns a Graph over the dense vertex range [0, vertexCount)
// with an empty edge set sized for sizeHint edges.
//
// Complexity: O(1).
func NewGraph(vertexCount, sizeHint int) Graph {
	return Graph{VertexCount: vertexCount, Edges: NewEdgeSet(sizeHint)}
}

// Validate checks the structural invariants of g:
//   - VertexCount ≥ 1 (ErrBadVertexCount);
//   - every endpoint lies in [0, VertexCount) (ErrVertexRange);
//   - every stored edge is canonical and loop-free (ErrSelfLoop).
//
// Generators call Validate in tests rather than on every hot-path mutation;
// NewEdge already guards the per-edge invariants during construction.
//
// Complexity: O(|E|).
func (g Graph) Validate() error {
	if g.VertexCount < 1 {
		return fmt.Errorf("Graph.Validate: VertexCount=%d: %w", g.VertexCount, ErrBadVertexCount)
	}
	for e := range g.Edges {
		if e.U == e.V {
			return fmt.Errorf("Graph.Validate: edge (%d,%d): %w", e.U, e.V, ErrSelfLoop)
		}
		if e.U > e.V || e.U < 0 || e.V >= g.VertexCount {
			return fmt.Errorf("Graph.Validate: edge (%d,%d) vs n=%d: %w", e.U, e.V, g.VertexCount, ErrVertexRange)
		}
	}

	return nil
}

// MaxEdges returns C(n, 2), the number of distinct undirected pairs over
// the vertex range. n < 2 yields 0.
func (g Graph) MaxEdges() int {
	n := g.VertexCount
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// Density returns |E| / C(n, 2), the fraction of realized pairs.
// Graphs with fewer than two vertices have density 0 by convention.
func (g Graph) Density() float64 {
	m := g.MaxEdges()
	if m == 0 {
		return 0
	}

	return float64(g.Edges.Len()) / float64(m)
}
