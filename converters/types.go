package converters

import (
	"errors"

	"github.com/katalvlaran/cliquegen/core"
)

// Sentinel errors for structural DIMACS problems.
var (
	// ErrMissingHeader indicates an edge line before any problem line, or a
	// DIMACS stream that ended without one.
	ErrMissingHeader = errors.New("converters: missing DIMACS problem line")

	// ErrDuplicateHeader indicates a second problem line.
	ErrDuplicateHeader = errors.New("converters: duplicate DIMACS problem line")

	// ErrBadHeader indicates a malformed problem line.
	ErrBadHeader = errors.New("converters: malformed DIMACS problem line")
)

// Format tokens (no magic literals in the codecs).
const (
	snapCommentMarker  = "#"
	dimacsCommentToken = "c"
	dimacsProblemToken = "p"
	dimacsEdgeToken    = "e"
	dimacsProblemKind  = "edge"
)

// Document is the codec interchange value: the canonical deduplicated edge
// set of one file, its comment block, and the parse-warning tally.
type Document struct {
	// Edges holds each undirected pair at most once, canonically.
	Edges core.EdgeSet

	// Comments preserves comment lines verbatim, marker stripped; emission
	// re-attaches the target format's marker in front of the raw tail.
	Comments []string

	// Skipped counts malformed data lines dropped during parsing.
	Skipped int
}

// NewDocument returns an empty document ready for population.
func NewDocument() Document {
	return Document{Edges: core.NewEdgeSet(0)}
}

// FromGraph wraps a generator-produced graph for emission, attaching the
// given comment lines (without markers).
func FromGraph(g core.Graph, comments ...string) Document {
	return Document{Edges: g.Edges, Comments: comments}
}

// Vertices returns the set of distinct ids referenced by the edges.
//
// Complexity: O(|E|).
func (d Document) Vertices() core.VertexSet {
	vs := make(core.VertexSet, 2*d.Edges.Len())
	for e := range d.Edges {
		vs.Add(e.U)
		vs.Add(e.V)
	}

	return vs
}

// VertexCount returns the number of distinct referenced ids, the N of the
// DIMACS problem line. Isolated vertices are invisible to both formats.
func (d Document) VertexCount() int {
	return d.Vertices().Len()
}

// MinVertex returns the smallest referenced id (0 for an edgeless
// document); a minimum of 0 is the signal for the +1 DIMACS shift.
func (d Document) MinVertex() int {
	first := true
	minID := 0
	for e := range d.Edges {
		if first || e.U < minID {
			minID = e.U
			first = false
		}
	}

	return minID
}

// Graph densifies the document into a core.Graph whose vertex range covers
// every endpoint, satisfying the core invariant for downstream generators
// and solvers.
//
// Complexity: O(|E|).
func (d Document) Graph() core.Graph {
	maxID := -1
	for e := range d.Edges {
		if e.V > maxID {
			maxID = e.V
		}
	}

	return core.Graph{VertexCount: maxID + 1, Edges: d.Edges}
}
