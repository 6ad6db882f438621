// SPDX-License-Identifier: MIT
// Package: cliquegen/converters
//
// snap.go — SNAP edge-list codec.
//
// Parsing policy: blank lines skipped; "#" lines preserved as comments;
// every other line must split into at least two integer tokens (extra
// columns ignored). Anything else (non-integer tokens, self-loops,
// negative ids) skips the line and bumps Document.Skipped.

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquegen/core"
)

// maxLineBytes bounds a single input line; benchmark corpora occasionally
// carry very wide comment headers.
const maxLineBytes = 1 << 20

// ParseSNAP reads a SNAP edge list into a Document.
//
// Complexity: O(bytes) time, O(|E|) space.
func ParseSNAP(r io.Reader) (Document, error) {
	d := NewDocument()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, snapCommentMarker):
			// Preserve the tail verbatim; the marker is re-attached on emission.
			d.Comments = append(d.Comments, strings.TrimPrefix(line, snapCommentMarker))
		default:
			u, v, ok := parseEndpoints(line, 0)
			if !ok {
				d.Skipped++

				continue
			}
			e, err := core.NewEdge(u, v)
			if err != nil {
				d.Skipped++ // self-loop or negative id: warn-and-skip

				continue
			}
			d.Edges.Add(e)
		}
	}
	if err := sc.Err(); err != nil {
		return Document{}, fmt.Errorf("ParseSNAP: %w", err)
	}

	return d, nil
}

// WriteSNAP emits d as a SNAP edge list, preserving the document's index
// base as-is. Comments come first, then edges in canonical order.
//
// Complexity: O(|E| log |E|).
func WriteSNAP(w io.Writer, d Document) error {
	bw := bufio.NewWriter(w)
	for _, c := range d.Comments {
		if _, err := fmt.Fprintf(bw, "%s%s\n", snapCommentMarker, c); err != nil {
			return fmt.Errorf("WriteSNAP: comment: %w", err)
		}
	}
	for _, e := range d.Edges.Sorted() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return fmt.Errorf("WriteSNAP: edge (%d,%d): %w", e.U, e.V, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteSNAP: flush: %w", err)
	}

	return nil
}

// parseEndpoints extracts two integers from the whitespace-split fields of
// line, starting at field index skip; extra fields are ignored. ok=false
// marks the line malformed.
func parseEndpoints(line string, skip int) (u, v int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < skip+2 {
		return 0, 0, false
	}
	u, err := strconv.Atoi(fields[skip])
	if err != nil {
		return 0, 0, false
	}
	v, err = strconv.Atoi(fields[skip+1])
	if err != nil {
		return 0, 0, false
	}

	return u, v, true
}
