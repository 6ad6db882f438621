// Package converters provides two-way adapters between core graphs and the
// two plain-text edge-list encodings consumed by maximum-clique solvers:
//
//   - SNAP: comment lines "# ...", data lines "<u> <v>" (whitespace
//     separated, extra columns ignored), no header, no counts.
//   - DIMACS: comment lines "c ...", exactly one problem line
//     "p edge <N> <M>" preceding the edges, edge lines "e <u> <v>" with
//     1-based ids.
//
// The interchange value is Document: the deduplicated canonical edge set
// plus the comment block (preserved verbatim, marker swapped on
// re-emission) and a count of skipped malformed lines.
//
// Index-base normalization: DIMACS emission shifts every id by +1 iff the
// minimum referenced id is 0, so output is always 1-based; SNAP emission
// preserves whatever base the document already uses. Round-tripping SNAP
// through WriteDIMACS and ParseDIMACS yields the same edge set modulo that
// documented shift.
//
// Robustness policy (benchmark corpora are not pristine): a malformed data
// line (too few tokens, non-integer tokens, a self-loop, a negative id)
// is skipped and counted in Document.Skipped, never failing the parse.
// Structural problems in DIMACS input (missing, duplicate, or malformed
// problem line) ARE errors.
//
// Counting convention (an accepted format limitation shared by both
// encodings): N in the problem line is the number of distinct ids actually
// referenced by edges; isolated vertices are not representable.
package converters
