package core

import "sort"

// NewEdgeSet returns an empty EdgeSet with room for sizeHint edges.
// A non-positive hint is treated as zero.
//
// Complexity: O(1).
func NewEdgeSet(sizeHint int) EdgeSet {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return make(EdgeSet, sizeHint)
}

// Add inserts e into the set; inserting an already-present edge is a no-op.
// Callers must only pass canonical edges (NewEdge output).
//
// Complexity: O(1) amortized.
func (s EdgeSet) Add(e Edge) {
	s[e] = struct{}{}
}

// Has reports whether e is present. e must be canonical.
//
// Complexity: O(1).
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[e]

	return ok
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int {
	return len(s)
}

// Delete removes e from the set; removing an absent edge is a no-op.
// Used only by subtractive density trimming.
func (s EdgeSet) Delete(e Edge) {
	delete(s, e)
}

// Clone returns an independent shallow copy of the set.
//
// Complexity: O(|s|) time and space.
func (s EdgeSet) Clone() EdgeSet {
	c := make(EdgeSet, len(s))
	for e := range s {
		c[e] = struct{}{}
	}

	return c
}

// Equal reports whether s and o contain exactly the same edges.
//
// Complexity: O(|s|).
func (s EdgeSet) Equal(o EdgeSet) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}

	return true
}

// Sorted returns the edges in (U, V) lexicographic order. This is the only
// iteration order exposed by the package: every consumer that needs a stable
// sequence (codec emission, seeded subsampling, tests) goes through it, so
// no result can depend on Go's randomized map iteration.
//
// Complexity: O(|s| log |s|) time, O(|s|) space.
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Add inserts vertex id v into the set.
func (vs VertexSet) Add(v int) {
	vs[v] = struct{}{}
}

// Has reports whether vertex id v is present.
func (vs VertexSet) Has(v int) bool {
	_, ok := vs[v]

	return ok
}

// Len returns the number of vertices in the set.
func (vs VertexSet) Len() int {
	return len(vs)
}

// Sorted returns the vertex ids in ascending order.
//
// Complexity: O(|vs| log |vs|) time, O(|vs|) space.
func (vs VertexSet) Sorted() []int {
	out := make([]int, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
