package converters_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cliquegen/converters"
	"github.com/katalvlaran/cliquegen/core"
	"github.com/stretchr/testify/require"
)

func TestParseSNAP_BasicAndComments(t *testing.T) {
	t.Parallel()

	in := "# Synthetic graph\n\n0 1\n1 2\n# trailing note\n"
	d, err := converters.ParseSNAP(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []string{" Synthetic graph", " trailing note"}, d.Comments)
	require.Equal(t, 2, d.Edges.Len())
	require.True(t, d.Edges.Has(core.Edge{U: 0, V: 1}))
	require.True(t, d.Edges.Has(core.Edge{U: 1, V: 2}))
	require.Zero(t, d.Skipped)
	require.Equal(t, 3, d.VertexCount())
	require.Equal(t, 0, d.MinVertex())
}

// TestParseSNAP_WarnAndSkip: malformed lines never fail the parse; they are
// skipped and tallied.
func TestParseSNAP_WarnAndSkip(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"0 1 extra ignored", // extra columns are fine
		"only-one-token",    // too few integers
		"a b",               // non-integer tokens
		"7",                 // one token
		"3 3",               // self-loop
		"-1 2",              // negative id
		"2 0",               // reversed duplicate of nothing; canonicalized
		"0 2",               // duplicate after canonicalization
	}, "\n")

	d, err := converters.ParseSNAP(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 5, d.Skipped)
	require.Equal(t, 2, d.Edges.Len())
	require.True(t, d.Edges.Has(core.Edge{U: 0, V: 1}))
	require.True(t, d.Edges.Has(core.Edge{U: 0, V: 2}))
}

func TestWriteSNAP_PreservesBaseAndOrder(t *testing.T) {
	t.Parallel()

	// 1-based in memory stays 1-based in SNAP output.
	d := converters.NewDocument()
	d.Comments = []string{" one-based corpus"}
	for _, p := range [][2]int{{2, 3}, {1, 2}} {
		e, err := core.NewEdge(p[0], p[1])
		require.NoError(t, err)
		d.Edges.Add(e)
	}

	var sb strings.Builder
	require.NoError(t, converters.WriteSNAP(&sb, d))
	require.Equal(t, "# one-based corpus\n1 2\n2 3\n", sb.String())
}

func TestSNAP_RoundTrip(t *testing.T) {
	t.Parallel()

	in := "# header\n0 5\n3 4\n5 3\n"
	d1, err := converters.ParseSNAP(strings.NewReader(in))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, converters.WriteSNAP(&sb, d1))

	d2, err := converters.ParseSNAP(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.True(t, d1.Edges.Equal(d2.Edges))
	require.Equal(t, d1.Comments, d2.Comments)
}

func TestDocument_Graph(t *testing.T) {
	t.Parallel()

	d, err := converters.ParseSNAP(strings.NewReader("0 4\n1 2\n"))
	require.NoError(t, err)

	g := d.Graph()
	require.Equal(t, 5, g.VertexCount) // dense cover of the max endpoint
	require.NoError(t, g.Validate())
	require.Equal(t, 4, d.VertexCount()) // distinct ids only: 0,1,2,4
}
