// SPDX-License-Identifier: MIT
// Package: cliquegen/rmat
//
// rmat.go — implementation of Generate(params).
//
// Canonical model:
//   - Round the vertex count up to n = 2^⌈log2(Vertices)⌉.
//   - Per edge: walk log2(n) levels; at each level draw r ∈ [0,1) and pick a
//     quadrant via cumulative thresholds a, a+b, a+b+c, 1; shift the quadrant
//     bits into the running row index u and column index v.
//   - Reduce u, v modulo Vertices; reject self-loops; dedupe via EdgeSet.
//
// Determinism:
//   - One rng per call (rngFromSeed); fixed draw order (levels inner, edges
//     outer) ⇒ identical Params always yield bit-identical edge sets.

package rmat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cliquegen/core"
)

// Generate samples an R-MAT graph described by p.
//
// Returns the graph, per-call statistics, and a configuration error for
// invalid parameters. Budget exhaustion (Stats.Collected < Stats.Requested)
// is a documented non-fatal outcome.
//
// Complexity: O(attempts × levels) time, O(|E|) space.
func Generate(p Params) (core.Graph, Stats, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if err := validate(p); err != nil {
		return core.Graph{}, Stats{}, err
	}

	// 2) Resolve the recursion depth: levels = ⌈log2(Vertices)⌉.
	levels := 0
	for (1 << levels) < p.Vertices {
		levels++
	}

	g := core.NewGraph(p.Vertices, p.Edges)
	stats := Stats{Requested: p.Edges}

	// A single vertex admits no loop-free edge; return the empty graph
	// immediately rather than burning the whole attempt budget.
	if p.Vertices == minVertices {
		return g, stats, nil
	}

	// 3) Per-call RNG: reproducibility must not depend on any global stream.
	rng := rngFromSeed(p.Seed)

	// Cumulative quadrant thresholds, fixed for the whole call.
	tAB := p.A + p.B
	tABC := tAB + p.C

	// 4) Sample until the target is met or the attempt budget runs out.
	budget := attemptFactor * p.Edges
	var u, v, depth int
	var r float64
	for g.Edges.Len() < p.Edges && stats.Attempts < budget {
		stats.Attempts++

		u, v = 0, 0
		for depth = 0; depth < levels; depth++ {
			r = rng.Float64()
			switch {
			case r < p.A: // top-left: (0,0)
				u <<= 1
				v <<= 1
			case r < tAB: // top-right: (0,1)
				u <<= 1
				v = v<<1 | 1
			case r < tABC: // bottom-left: (1,0)
				u = u<<1 | 1
				v <<= 1
			default: // bottom-right: (1,1)
				u = u<<1 | 1
				v = v<<1 | 1
			}
		}

		// Fold the power-of-two index space back onto the requested range.
		u %= p.Vertices
		v %= p.Vertices
		if u == v {
			continue // self-loop draw; rejected, attempt still consumed
		}

		e, err := core.NewEdge(u, v)
		if err != nil {
			// Unreachable given the guards above; surface rather than mask.
			return core.Graph{}, Stats{}, fmt.Errorf("%s: edge (%d,%d): %w", methodGenerate, u, v, err)
		}
		g.Edges.Add(e)
	}

	stats.Collected = g.Edges.Len()

	return g, stats, nil
}

// validate applies the configuration checks in a stable order:
// sizes first, then per-probability domains, then the sum constraint.
func validate(p Params) error {
	if p.Vertices < minVertices {
		return fmt.Errorf("%s: vertices=%d < min=%d: %w",
			methodGenerate, p.Vertices, minVertices, ErrTooFewVertices)
	}
	if p.Edges < 0 {
		return fmt.Errorf("%s: edges=%d: %w", methodGenerate, p.Edges, ErrBadEdgeCount)
	}
	for _, q := range [4]float64{p.A, p.B, p.C, p.D} {
		if q < 0 || q > 1 || math.IsNaN(q) {
			return fmt.Errorf("%s: probability %.6f not in [0,1]: %w",
				methodGenerate, q, ErrProbabilityRange)
		}
	}
	if sum := p.A + p.B + p.C + p.D; math.Abs(sum-1) > probSumTolerance {
		return fmt.Errorf("%s: a+b+c+d=%.9f, tolerance=%g: %w",
			methodGenerate, sum, probSumTolerance, ErrProbabilitySum)
	}

	return nil
}
