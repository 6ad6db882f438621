// SPDX-License-Identifier: MIT
// Package: cliquegen/sat3
//
// build.go — the literal-conflict graph builder.
//
// Vertex numbering: variable v owns two consecutive ids, 2(v−1) for its
// positive literal and 2(v−1)+1 for its negative literal, so the layout is
// reproducible by inspection.
//
// Determinism: the RNG is a per-call instance; the soft-edge trials iterate
// the formula in clause/position order, and the density subsample shuffles
// the canonically sorted edge slice, never a map iteration.

package sat3

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/cliquegen/core"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Build derives a synthetic 3-SAT instance for the given vertex target and
// converts it into a literal-conflict graph trimmed to densityTarget.
// The intermediate formula is internal; callers needing it use
// DeriveFormula directly.
//
// densityTarget is an upper bound: an over-dense graph is subsampled to
// round(C(n,2)×density) edges, an under-dense graph is returned as-is.
//
// Complexity: O(nClauses + |E|) expected time, O(|E|) space.
func Build(targetVertices int, densityTarget float64, seed int64, opts ...Option) (core.Graph, error) {
	// 1) Validate configuration; never silently correct.
	if targetVertices < MinVertices {
		return core.Graph{}, fmt.Errorf("%s: target=%d < min=%d: %w",
			methodBuild, targetVertices, MinVertices, ErrTooFewVertices)
	}
	if densityTarget < 0 || densityTarget > 1 || math.IsNaN(densityTarget) {
		return core.Graph{}, fmt.Errorf("%s: density=%.6f not in [0,1]: %w",
			methodBuild, densityTarget, ErrBadDensity)
	}
	cfg := newBuildConfig(opts...)

	// Clamp oversized targets (documented cap, not an error).
	target := targetVertices
	if target > MaxVertices {
		target = MaxVertices
	}

	// 2) Instance shape: one literal pair per variable, 2 clauses per variable.
	nVars := target / literalsPerVariable
	nClauses := nVars * clausesPerVariable

	formula, err := DeriveFormula(nVars, nClauses)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", methodBuild, err)
	}

	rng := rand.New(rand.NewSource(resolveSeed(seed)))

	// 3) Conflict edges. Hard: every variable's two literal vertices.
	edges := core.NewEdgeSet(nVars * clauseWidth)
	for v := 1; v <= nVars; v++ {
		e, eerr := core.NewEdge(positiveVertex(v), negativeVertex(v))
		if eerr != nil {
			return core.Graph{}, fmt.Errorf("%s: hard conflict var %d: %w", methodBuild, v, eerr)
		}
		edges.Add(e)
	}

	// Soft: each intra-clause literal pair with independent probability.
	for _, clause := range formula {
		for i := 0; i < len(clause); i++ {
			for j := i + 1; j < len(clause); j++ {
				if rng.Float64() >= cfg.conflictProbability {
					continue
				}
				e, eerr := core.NewEdge(literalVertex(clause[i]), literalVertex(clause[j]))
				if eerr != nil {
					return core.Graph{}, fmt.Errorf("%s: soft conflict (%d,%d): %w",
						methodBuild, clause[i], clause[j], eerr)
				}
				edges.Add(e)
			}
		}
	}

	// 4) Truncate: drop vertices ≥ target together with incident edges.
	nFinal := nVars * literalsPerVariable
	if nFinal > target {
		nFinal = target
	}
	for _, e := range edges.Sorted() {
		if e.V >= nFinal {
			edges.Delete(e)
		}
	}

	// 5) Density cap: subsample exactly round(C(n,2)×density) edges.
	g := core.Graph{VertexCount: nFinal, Edges: edges}
	targetEdges := int(math.Round(float64(g.MaxEdges()) * densityTarget))
	if edges.Len() > targetEdges {
		g.Edges = subsample(edges, targetEdges, rng)
	}

	return g, nil
}

// subsample keeps exactly k edges, drawn uniformly by shuffling the
// canonically sorted slice; the draw depends only on rng state.
func subsample(edges core.EdgeSet, k int, rng *rand.Rand) core.EdgeSet {
	sorted := edges.Sorted()
	rng.Shuffle(len(sorted), func(i, j int) {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	})

	kept := core.NewEdgeSet(k)
	for _, e := range sorted[:k] {
		kept.Add(e)
	}

	return kept
}

// positiveVertex returns the vertex id of variable v's positive literal.
func positiveVertex(v int) int { return literalsPerVariable * (v - 1) }

// negativeVertex returns the vertex id of variable v's negative literal.
func negativeVertex(v int) int { return literalsPerVariable*(v-1) + 1 }

// literalVertex maps a signed literal onto its conflict-graph vertex.
func literalVertex(lit int) int {
	if lit > 0 {
		return positiveVertex(lit)
	}

	return negativeVertex(-lit)
}

// resolveSeed applies the zero-seed policy shared across cliquegen.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}
