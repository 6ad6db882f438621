package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/katalvlaran/cliquegen/converters"
	"github.com/katalvlaran/cliquegen/rmat"
	"github.com/katalvlaran/cliquegen/suite"
)

// instanceConfig is the YAML shape of one catalog entry.
type instanceConfig struct {
	Name     string  `mapstructure:"name"`
	Kind     string  `mapstructure:"kind"`
	Vertices int     `mapstructure:"vertices"`
	Edges    int     `mapstructure:"edges"`
	A        float64 `mapstructure:"a"`
	B        float64 `mapstructure:"b"`
	C        float64 `mapstructure:"c"`
	D        float64 `mapstructure:"d"`
	Density  float64 `mapstructure:"density"`
	Seed     int64   `mapstructure:"seed"`
}

// runGenerate writes every catalog instance into outDir in the requested
// format. Generation is deterministic; rerunning overwrites identical files.
func runGenerate(outDir, format, configPath string) error {
	if format != "snap" && format != "dimacs" {
		return fmt.Errorf("unknown format %q (want snap or dimacs)", format)
	}

	catalog, err := loadCatalog(configPath)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	for _, in := range catalog {
		g, gerr := in.Generate()
		if gerr != nil {
			return gerr
		}

		doc := converters.FromGraph(g,
			" Synthetic graph for maximum clique benchmarking",
			fmt.Sprintf(" Instance: %s", in.Name),
			fmt.Sprintf(" Vertices: %d", g.VertexCount),
			fmt.Sprintf(" Edges: %d", g.Edges.Len()),
			" Undirected graph (each edge listed once)",
		)

		path := filepath.Join(outDir, in.Name+".txt")
		if werr := writeDocument(path, format, doc); werr != nil {
			return werr
		}

		slog.Info("generated instance",
			"name", in.Name,
			"vertices", g.VertexCount,
			"edges", g.Edges.Len(),
			"density", fmt.Sprintf("%.4f", g.Density()),
			"path", path,
		)
	}

	return nil
}

// loadCatalog returns the default suite, or the instances declared in the
// viper-readable YAML file at configPath.
func loadCatalog(configPath string) ([]suite.Instance, error) {
	if configPath == "" {
		return suite.Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", configPath, err)
	}

	var raw []instanceConfig
	if err := v.UnmarshalKey("instances", &raw); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", configPath, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog %s declares no instances", configPath)
	}

	catalog := make([]suite.Instance, 0, len(raw))
	for _, ic := range raw {
		in := suite.Instance{
			Name:     ic.Name,
			Kind:     suite.Kind(ic.Kind),
			Vertices: ic.Vertices,
			Density:  ic.Density,
			Seed:     ic.Seed,
		}
		if in.Kind == suite.KindRMAT {
			in.RMAT = rmat.Params{
				A: ic.A, B: ic.B, C: ic.C, D: ic.D,
				Vertices: ic.Vertices, Edges: ic.Edges, Seed: ic.Seed,
			}
		}
		catalog = append(catalog, in)
	}

	return catalog, nil
}

// writeDocument persists doc at path in the requested encoding.
func writeDocument(path, format string, doc converters.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if format == "dimacs" {
		err = converters.WriteDIMACS(f, doc)
	} else {
		err = converters.WriteSNAP(f, doc)
	}
	cerr := f.Close()
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}

	return nil
}
