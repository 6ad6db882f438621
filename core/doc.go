// Package core defines the central Edge, EdgeSet, VertexSet, and Graph types
// shared by every generator and codec in cliquegen.
//
// The model is deliberately small and value-oriented:
//
//   - Vertices are dense non-negative integers in [0, VertexCount) within a
//     generator's own indexing (DIMACS emission shifts to [1, N] at the
//     codec boundary, never here).
//   - An Edge is an unordered pair stored canonically as (min, max); self-loops
//     are rejected at construction.
//   - An EdgeSet is a true set: duplicate draws from stochastic generators
//     deduplicate naturally; Sorted() is the only iteration order any caller
//     may observe, so nothing downstream can depend on map ordering.
//   - A Graph is a plain (VertexCount, Edges) pair with a Validate method
//     enforcing the endpoint-range invariant.
//
// All entities are constructed once per generation call and handed by value;
// the only sanctioned mutations are append-only growth of an EdgeSet during
// generation and subtractive trimming during density enforcement.
//
// Errors:
//
//	ErrSelfLoop       - edge endpoints are equal.
//	ErrNegativeVertex - an endpoint id is negative.
//	ErrVertexRange    - an edge endpoint is outside [0, VertexCount).
//	ErrBadVertexCount - a graph's VertexCount is not positive.
package core
