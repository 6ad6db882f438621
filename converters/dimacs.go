// SPDX-License-Identifier: MIT
// Package: cliquegen/converters
//
// dimacs.go — DIMACS "p edge" codec.
//
// Emission is where index-base normalization happens: ids shift +1 iff the
// minimum referenced id is 0, so DIMACS output is always 1-based. Parsing
// keeps ids exactly as written (already 1-based by format contract).

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cliquegen/core"
)

// ParseDIMACS reads a DIMACS edge-format stream into a Document.
//
// Structural requirements: exactly one "p edge <N> <M>" line, before any
// "e" line (ErrMissingHeader / ErrDuplicateHeader / ErrBadHeader).
// Malformed "e" lines and unknown line types are skipped and counted.
//
// Complexity: O(bytes) time, O(|E|) space.
func ParseDIMACS(r io.Reader) (Document, error) {
	d := NewDocument()
	sawHeader := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case dimacsCommentToken:
			// Preserve everything after the marker verbatim.
			d.Comments = append(d.Comments, strings.TrimPrefix(line, dimacsCommentToken))
		case dimacsProblemToken:
			if sawHeader {
				return Document{}, fmt.Errorf("ParseDIMACS: %w", ErrDuplicateHeader)
			}
			if len(fields) < 4 || fields[1] != dimacsProblemKind {
				return Document{}, fmt.Errorf("ParseDIMACS: %q: %w", line, ErrBadHeader)
			}
			// Declared N and M are advisory; the edge lines are authoritative.
			sawHeader = true
		case dimacsEdgeToken:
			if !sawHeader {
				return Document{}, fmt.Errorf("ParseDIMACS: edge before problem line: %w", ErrMissingHeader)
			}
			u, v, ok := parseEndpoints(line, 1)
			if !ok {
				d.Skipped++

				continue
			}
			e, err := core.NewEdge(u, v)
			if err != nil {
				d.Skipped++

				continue
			}
			d.Edges.Add(e)
		default:
			d.Skipped++ // unknown line type: warn-and-skip
		}
	}
	if err := sc.Err(); err != nil {
		return Document{}, fmt.Errorf("ParseDIMACS: %w", err)
	}
	if !sawHeader {
		return Document{}, fmt.Errorf("ParseDIMACS: %w", ErrMissingHeader)
	}

	return d, nil
}

// WriteDIMACS emits d in DIMACS edge format: preserved comments first
// (marker swapped to "c"), then "p edge <N> <M>" with N = distinct
// referenced ids, then one "e <u> <v>" per edge in canonical order.
// Ids shift +1 iff the minimum observed id is 0.
//
// Complexity: O(|E| log |E|).
func WriteDIMACS(w io.Writer, d Document) error {
	shift := 0
	if d.Edges.Len() > 0 && d.MinVertex() == 0 {
		shift = 1
	}

	bw := bufio.NewWriter(w)
	for _, c := range d.Comments {
		if _, err := fmt.Fprintf(bw, "%s%s\n", dimacsCommentToken, c); err != nil {
			return fmt.Errorf("WriteDIMACS: comment: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "%s %s %d %d\n",
		dimacsProblemToken, dimacsProblemKind, d.VertexCount(), d.Edges.Len()); err != nil {
		return fmt.Errorf("WriteDIMACS: problem line: %w", err)
	}
	for _, e := range d.Edges.Sorted() {
		if _, err := fmt.Fprintf(bw, "%s %d %d\n", dimacsEdgeToken, e.U+shift, e.V+shift); err != nil {
			return fmt.Errorf("WriteDIMACS: edge (%d,%d): %w", e.U, e.V, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDIMACS: flush: %w", err)
	}

	return nil
}
