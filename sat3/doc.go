// Package sat3 builds synthetic literal-conflict graphs from 3-SAT
// instances that are themselves derived from a cryptographic hash, making
// every clause a pure function of its index.
//
// Pipeline (Build):
//
//  1. Derive counts from the vertex target: variables = target/2,
//     clauses = 2×variables (one literal pair per variable).
//  2. DeriveFormula: for clause i, sha256("clause_<i>_<nVars>"); digest
//     bytes [0:2), [2:4), [4:6) big-endian modulo nVars give three candidate
//     variables (deterministic linear probing resolves collisions); the
//     parity of bytes 6, 7, 8 gives the three polarities. Identical
//     (index, nVars) inputs always yield identical clauses, independent of
//     prior call order.
//  3. Conflict graph: one vertex per (variable, polarity) literal; a hard
//     conflict edge always joins a variable's positive and negative
//     vertices; each unordered literal pair inside a generated clause gains
//     a soft conflict edge with independent seeded probability (default
//     0.3, a tunable knob rather than 3-SAT semantics).
//  4. Truncate to the vertex target, discarding incident edges.
//  5. Enforce the density target: when the edge count exceeds
//     round(C(n,2)×density) a seeded uniform subsample of exactly that size
//     is kept. Density is an upper bound only: a sparser graph is never
//     topped up. This asymmetry is documented behavior, not a bug.
//
// Determinism: the formula needs no seed at all (hash-derived); the soft
// edges and the subsample draw from one per-call RNG, so identical
// (target, density, seed, options) reproduce the graph bit for bit.
package sat3
