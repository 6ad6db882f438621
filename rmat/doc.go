// Package rmat implements the R-MAT (Recursive MATrix) random graph model:
// each edge is sampled by walking ⌈log2(n)⌉ recursion levels over the
// adjacency matrix, choosing one of four quadrants per level with
// probabilities (a, b, c, d), and appending the quadrant bits to the row
// and column indices.
//
// Contract:
//   - Generate(params) is deterministic for a fixed Params.Seed; the RNG is
//     a per-call instance, never a process-wide stream.
//   - Self-loops are rejected; duplicate draws deduplicate through the
//     canonical core.EdgeSet.
//   - Sampling stops after collecting Params.Edges unique edges or after an
//     attempt budget of 10×Edges draws. Budget exhaustion is NOT an error:
//     the smaller graph is returned and reported via Stats.
//   - Quadrant probabilities must be non-negative and sum to 1 within 1e-6;
//     violations are configuration errors, never silently corrected.
//
// Presets mirror the canonical benchmark families:
//
//	ErdosRenyi  (0.25, 0.25, 0.25, 0.25) — uniform quadrants
//	SkewedType1 (0.45, 0.15, 0.15, 0.25) — mild degree skew
//	SkewedType2 (0.55, 0.15, 0.15, 0.15) — strong degree skew
//
// Complexity: O(Edges × log2(n)) expected time, O(Edges) space.
package rmat
