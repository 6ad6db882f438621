// SPDX-License-Identifier: MIT
// Package: cliquegen/cnf
//
// reduce.go — the SAT-to-clique k-partite construction.
//
// Contract:
//   - Reduce(f) returns (graph, partitions, error); partitions are indexed
//     by clause and pairwise disjoint; their union is the whole vertex set.
//   - Vertex ids are assigned in clause order, position order, starting at 0,
//     so the mapping id ↔ literal occurrence is reproducible by inspection.
//   - Edge rule: different clause AND not complementary. Nothing else.
//   - Purely deterministic; no RNG is involved anywhere in the reduction.
//
// Complexity: O(V²) time over V = total literal occurrences, O(V + E) space.

package cnf

import (
	"fmt"

	"github.com/katalvlaran/cliquegen/core"
)

const methodReduce = "Reduce"

// litRef locates one literal occurrence: its clause index and literal value.
type litRef struct {
	clause  int
	literal int
}

// Reduce converts a validated formula into its k-partite conflict-free
// graph. A clique of size k in the result corresponds to k simultaneously
// satisfiable clauses; an unconditionally satisfiable formula therefore
// yields max clique = len(f).
func Reduce(f Formula) (core.Graph, []core.VertexSet, error) {
	// Malformed input is a configuration error, surfaced before any work.
	if err := f.Validate(); err != nil {
		return core.Graph{}, nil, fmt.Errorf("%s: %w", methodReduce, err)
	}

	// 1) Assign one vertex per literal occurrence, clause-major.
	refs := make([]litRef, 0, len(f)*3)
	partitions := make([]core.VertexSet, len(f))
	id := 0
	for ci, clause := range f {
		part := make(core.VertexSet, len(clause))
		for _, lit := range clause {
			refs = append(refs, litRef{clause: ci, literal: lit})
			part.Add(id)
			id++
		}
		partitions[ci] = part
	}

	// 2) One-pass pairwise scan; density is inherent to the reduction.
	g := core.NewGraph(id, id*id/4)
	var u, v int
	for u = 0; u < id; u++ {
		for v = u + 1; v < id; v++ {
			if refs[u].clause == refs[v].clause {
				continue // same partition: never an edge
			}
			if refs[u].literal == -refs[v].literal {
				continue // complementary literals conflict
			}
			e, err := core.NewEdge(u, v)
			if err != nil {
				// Unreachable with u < v over non-negative ids.
				return core.Graph{}, nil, fmt.Errorf("%s: edge (%d,%d): %w", methodReduce, u, v, err)
			}
			g.Edges.Add(e)
		}
	}

	return g, partitions, nil
}
