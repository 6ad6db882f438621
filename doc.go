// Package cliquegen produces synthetic and reduced graph instances used as
// benchmark inputs for maximum-clique solvers, and converts between the two
// textual edge-list encodings those solvers consume.
//
// 🚀 What is cliquegen?
//
//	A deterministic, reproducibility-first generator toolkit:
//		• Core primitives: canonical undirected edges, edge sets, dense graphs
//		• R-MAT: recursive-matrix random graphs (Erdős–Rényi & skewed presets)
//		• CNF reduction: SAT → k-partite graphs with a provable max-clique size
//		• Hashed 3-SAT: sha256-derived formulas turned into literal-conflict graphs
//		• Converters: SNAP ⇄ DIMACS with index-base normalization
//
// ✨ Why choose cliquegen?
//
//   - Reproducible – every stochastic path is driven by an explicit per-call seed
//   - Honest contracts – sentinel errors, documented attempt budgets, no panics
//   - Pure generation – no clique solver inside; graphs are handed to yours
//
// Under the hood, everything is organized in small subpackages:
//
//	core/       — Edge, EdgeSet, VertexSet, Graph value types & validation
//	rmat/       — recursive-quadrant R-MAT edge sampler
//	cnf/        — CNF formulas & the SAT-to-clique k-partite reduction
//	sat3/       — hash-derived synthetic 3-SAT conflict-graph builder
//	converters/ — SNAP and DIMACS text codecs
//	suite/      — the canonical benchmark catalog (seeds included)
//
// Quick ASCII example (2-clause reduction, one vertex per literal):
//
//	    (x1 ∨ x2 ∨ x3) ∧ (¬x1 ∨ ¬x2 ∨ x4)
//	     v0   v1   v2      v3    v4   v5
//
//	every cross-clause, non-complementary pair is an edge; the maximum
//	clique picks one vertex per satisfiable clause.
//
// Dive into README-style docs in each subpackage for full contracts,
// determinism guarantees, and complexity notes.
//
//	go get github.com/katalvlaran/cliquegen
package cliquegen
