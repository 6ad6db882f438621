package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/cliquegen/converters"
)

// runConvert reads a SNAP edge list and writes its DIMACS rendition,
// normalizing 0-based ids to the 1-based range DIMACS requires.
func runConvert(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	doc, perr := converters.ParseSNAP(in)
	cerr := in.Close()
	if perr != nil {
		return perr
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", inPath, cerr)
	}

	if doc.Skipped > 0 {
		slog.Warn("skipped malformed lines", "path", inPath, "count", doc.Skipped)
	}

	if err = writeDocument(outPath, "dimacs", doc); err != nil {
		return err
	}

	slog.Info("converted",
		"input", inPath,
		"output", outPath,
		"vertices", doc.VertexCount(),
		"edges", doc.Edges.Len(),
	)

	return nil
}
