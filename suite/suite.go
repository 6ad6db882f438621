// Package suite pins the canonical benchmark catalog: the named graph
// instances (with their fixed seeds) that make up the standard input set
// for maximum-clique experiments. Regenerating the suite on any machine
// yields byte-identical graphs, which is the whole point of fixing the
// seeds here rather than in scripts.
package suite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquegen/core"
	"github.com/katalvlaran/cliquegen/rmat"
	"github.com/katalvlaran/cliquegen/sat3"
)

// ErrUnknownKind indicates an Instance with an unrecognized generator kind.
var ErrUnknownKind = errors.New("suite: unknown instance kind")

// Kind selects the generator behind an Instance.
type Kind string

// Generator kinds.
const (
	// KindRMAT generates through the R-MAT recursive-matrix model.
	KindRMAT Kind = "rmat"

	// KindSAT3 generates through the hashed 3-SAT conflict-graph builder.
	KindSAT3 Kind = "sat3"
)

// Instance names one reproducible benchmark graph.
type Instance struct {
	// Name is the file-friendly instance identifier (e.g. "rmat_er_small").
	Name string

	// Kind selects the generator; exactly one parameter group below applies.
	Kind Kind

	// RMAT holds the full parameter set when Kind == KindRMAT.
	RMAT rmat.Params

	// Vertices, Density, Seed parameterize Kind == KindSAT3.
	Vertices int
	Density  float64
	Seed     int64
}

// Generate produces the instance's graph.
func (in Instance) Generate() (core.Graph, error) {
	switch in.Kind {
	case KindRMAT:
		g, _, err := rmat.Generate(in.RMAT)
		if err != nil {
			return core.Graph{}, fmt.Errorf("suite %q: %w", in.Name, err)
		}

		return g, nil
	case KindSAT3:
		g, err := sat3.Build(in.Vertices, in.Density, in.Seed)
		if err != nil {
			return core.Graph{}, fmt.Errorf("suite %q: %w", in.Name, err)
		}

		return g, nil
	default:
		return core.Graph{}, fmt.Errorf("suite %q: kind %q: %w", in.Name, in.Kind, ErrUnknownKind)
	}
}

// Default returns the standard eight-instance catalog: two Erdős–Rényi-like
// R-MAT graphs, two per skewed-degree family, and two hashed-3-SAT graphs.
// Seeds are part of the catalog contract; do not renumber.
func Default() []Instance {
	return []Instance{
		{Name: "rmat_er_small", Kind: KindRMAT, RMAT: rmat.ErdosRenyi(200, 2000, 42)},
		{Name: "rmat_er_large", Kind: KindRMAT, RMAT: rmat.ErdosRenyi(500, 8000, 43)},
		{Name: "rmat_sd1_small", Kind: KindRMAT, RMAT: rmat.SkewedType1(200, 2500, 44)},
		{Name: "rmat_sd1_large", Kind: KindRMAT, RMAT: rmat.SkewedType1(500, 10000, 45)},
		{Name: "rmat_sd2_small", Kind: KindRMAT, RMAT: rmat.SkewedType2(200, 2500, 46)},
		{Name: "rmat_sd2_large", Kind: KindRMAT, RMAT: rmat.SkewedType2(500, 10000, 47)},
		{Name: "sat3_small", Kind: KindSAT3, Vertices: 150, Density: 0.08, Seed: 48},
		{Name: "sat3_large", Kind: KindSAT3, Vertices: 300, Density: 0.12, Seed: 49},
	}
}
