package rmat_test

import (
	"testing"

	"github.com/katalvlaran/cliquegen/core"
	"github.com/katalvlaran/cliquegen/rmat"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Validation covers the configuration-error taxonomy; all
// invalid parameter classes must fail fast with their sentinel.
func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  rmat.Params
		wantErr error
	}{
		{
			name:    "zero vertices",
			params:  rmat.Params{A: 0.25, B: 0.25, C: 0.25, D: 0.25, Vertices: 0, Edges: 10},
			wantErr: rmat.ErrTooFewVertices,
		},
		{
			name:    "negative edges",
			params:  rmat.Params{A: 0.25, B: 0.25, C: 0.25, D: 0.25, Vertices: 8, Edges: -1},
			wantErr: rmat.ErrBadEdgeCount,
		},
		{
			name:    "negative probability",
			params:  rmat.Params{A: -0.1, B: 0.5, C: 0.3, D: 0.3, Vertices: 8, Edges: 10},
			wantErr: rmat.ErrProbabilityRange,
		},
		{
			name:    "sum above tolerance",
			params:  rmat.Params{A: 0.3, B: 0.3, C: 0.3, D: 0.3, Vertices: 8, Edges: 10},
			wantErr: rmat.ErrProbabilitySum,
		},
		{
			name:   "sum within tolerance accepted",
			params: rmat.Params{A: 0.25, B: 0.25, C: 0.25, D: 0.25 + 5e-7, Vertices: 8, Edges: 4, Seed: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := rmat.Generate(tc.params)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

// TestGenerate_SameSeedSameGraph: identical (parameters, seed) must produce
// bit-identical edge sets regardless of call ordering.
func TestGenerate_SameSeedSameGraph(t *testing.T) {
	t.Parallel()

	p := rmat.ErdosRenyi(8, 1000, 1)
	g1, s1, err := rmat.Generate(p)
	require.NoError(t, err)

	// An unrelated call in between must not disturb the second run.
	_, _, err = rmat.Generate(rmat.SkewedType1(64, 300, 99))
	require.NoError(t, err)

	g2, s2, err := rmat.Generate(p)
	require.NoError(t, err)

	require.Equal(t, s1, s2)
	require.Equal(t, g1.Edges.Sorted(), g2.Edges.Sorted())
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	g1, _, err := rmat.Generate(rmat.ErdosRenyi(128, 400, 7))
	require.NoError(t, err)
	g2, _, err := rmat.Generate(rmat.ErdosRenyi(128, 400, 8))
	require.NoError(t, err)

	require.False(t, g1.Edges.Equal(g2.Edges))
}

// TestGenerate_NoSelfLoopsAndRange: every produced edge is canonical,
// loop-free, and inside [0, Vertices).
func TestGenerate_NoSelfLoopsAndRange(t *testing.T) {
	t.Parallel()

	for _, p := range []rmat.Params{
		rmat.ErdosRenyi(200, 2000, 42),
		rmat.SkewedType1(200, 2500, 44),
		rmat.SkewedType2(500, 10000, 47),
		{A: 1, B: 0, C: 0, D: 0, Vertices: 16, Edges: 50, Seed: 3}, // degenerate corner
	} {
		g, stats, err := rmat.Generate(p)
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		require.Equal(t, g.Edges.Len(), stats.Collected)
		require.LessOrEqual(t, stats.Collected, stats.Requested)
	}
}

func TestGenerate_SingleVertexIsEmpty(t *testing.T) {
	t.Parallel()

	g, stats, err := rmat.Generate(rmat.ErdosRenyi(1, 100, 5))
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount)
	require.Zero(t, g.Edges.Len())
	require.Zero(t, stats.Attempts) // no budget burned on an impossible target
}

// TestGenerate_BudgetExhaustion: an unreachable target degrades to a smaller
// graph after exactly 10×Edges attempts, without error.
func TestGenerate_BudgetExhaustion(t *testing.T) {
	t.Parallel()

	g, stats, err := rmat.Generate(rmat.ErdosRenyi(2, 5, 11))
	require.NoError(t, err)
	require.Equal(t, 1, g.Edges.Len()) // only one loop-free pair exists
	require.Equal(t, 50, stats.Attempts)
	require.Less(t, stats.Collected, stats.Requested)
}

// TestGenerate_UniformQuadrantsBalance: with a=b=c=d=0.25 the endpoint mass
// should spread evenly between the lower and upper half of the id range.
// Statistical check with a generous tolerance, not exact equality.
func TestGenerate_UniformQuadrantsBalance(t *testing.T) {
	t.Parallel()

	const n = 256
	g, _, err := rmat.Generate(rmat.ErdosRenyi(n, 4000, 42))
	require.NoError(t, err)
	require.Greater(t, g.Edges.Len(), 2000) // enough mass for the estimate

	lower := 0
	total := 0
	for _, e := range g.Edges.Sorted() {
		for _, x := range [2]int{e.U, e.V} {
			total++
			if x < n/2 {
				lower++
			}
		}
	}
	frac := float64(lower) / float64(total)
	require.InDelta(t, 0.5, frac, 0.05)
}

// TestGenerate_SkewConcentratesLowIds: a-heavy parameters bias both bit
// walks toward 0, so low ids must carry more endpoint mass than under the
// uniform preset.
func TestGenerate_SkewConcentratesLowIds(t *testing.T) {
	t.Parallel()

	const n = 256
	lowFrac := func(g core.Graph) float64 {
		lower, total := 0, 0
		for _, e := range g.Edges.Sorted() {
			for _, x := range [2]int{e.U, e.V} {
				total++
				if x < n/2 {
					lower++
				}
			}
		}

		return float64(lower) / float64(total)
	}

	uniform, _, err := rmat.Generate(rmat.ErdosRenyi(n, 4000, 21))
	require.NoError(t, err)
	skewed, _, err := rmat.Generate(rmat.SkewedType2(n, 4000, 21))
	require.NoError(t, err)

	require.Greater(t, lowFrac(skewed), lowFrac(uniform))
}
