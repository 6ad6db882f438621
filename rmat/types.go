// SPDX-License-Identifier: MIT
// Package: cliquegen/rmat
//
// types.go — parameters, result statistics, sentinel errors, and the
// canonical preset parameter sets.
//
// Error policy (same as the rest of cliquegen):
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context via %w wrapping with a method tag.
//   • Generate never panics; invalid parameters are configuration errors.

package rmat

import "errors"

// Sentinel errors for R-MAT parameter validation.
var (
	// ErrTooFewVertices indicates Params.Vertices < 1.
	ErrTooFewVertices = errors.New("rmat: vertex count too small")

	// ErrBadEdgeCount indicates Params.Edges < 0.
	ErrBadEdgeCount = errors.New("rmat: negative edge count")

	// ErrProbabilityRange indicates a quadrant probability outside [0, 1].
	ErrProbabilityRange = errors.New("rmat: quadrant probability out of range")

	// ErrProbabilitySum indicates a+b+c+d deviates from 1 beyond tolerance.
	ErrProbabilitySum = errors.New("rmat: quadrant probabilities must sum to 1")
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodGenerate = "Generate"

	// probSumTolerance is the permitted |a+b+c+d − 1| deviation.
	probSumTolerance = 1e-6

	// attemptFactor bounds sampling at attemptFactor × Params.Edges draws,
	// the safeguard against non-termination when the target is unreachable.
	attemptFactor = 10

	// minVertices is the smallest meaningful vertex count.
	minVertices = 1
)

// Params fully describes one R-MAT generation call.
type Params struct {
	// A, B, C, D are the quadrant probabilities (top-left, top-right,
	// bottom-left, bottom-right). Non-negative; sum to 1 within 1e-6.
	A, B, C, D float64

	// Vertices is the target vertex count (indices are reduced mod Vertices;
	// the recursion itself runs over the next power of two).
	Vertices int

	// Edges is the target number of unique undirected edges.
	Edges int

	// Seed drives the per-call RNG. Seed 0 maps to a fixed default so the
	// zero value of Params is still reproducible.
	Seed int64
}

// Stats reports the outcome of one generation call. A Collected value below
// Requested signals graceful degradation after budget exhaustion: a result
// attribute, not an error.
type Stats struct {
	// Requested is the edge target from Params.
	Requested int

	// Collected is the number of unique edges actually produced.
	Collected int

	// Attempts is the number of sampling draws consumed.
	Attempts int
}

// ErdosRenyi returns the uniform-quadrant preset (0.25, 0.25, 0.25, 0.25),
// an Erdős–Rényi-like edge distribution.
func ErdosRenyi(vertices, edges int, seed int64) Params {
	return Params{A: 0.25, B: 0.25, C: 0.25, D: 0.25, Vertices: vertices, Edges: edges, Seed: seed}
}

// SkewedType1 returns the mild degree-skew preset (0.45, 0.15, 0.15, 0.25).
func SkewedType1(vertices, edges int, seed int64) Params {
	return Params{A: 0.45, B: 0.15, C: 0.15, D: 0.25, Vertices: vertices, Edges: edges, Seed: seed}
}

// SkewedType2 returns the strong degree-skew preset (0.55, 0.15, 0.15, 0.15).
func SkewedType2(vertices, edges int, seed int64) Params {
	return Params{A: 0.55, B: 0.15, C: 0.15, D: 0.15, Vertices: vertices, Edges: edges, Seed: seed}
}
