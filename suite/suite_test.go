package suite_test

import (
	"testing"

	"github.com/katalvlaran/cliquegen/suite"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogShape(t *testing.T) {
	t.Parallel()

	catalog := suite.Default()
	require.Len(t, catalog, 8)

	names := map[string]bool{}
	for _, in := range catalog {
		require.NotEmpty(t, in.Name)
		require.False(t, names[in.Name], "duplicate instance name %q", in.Name)
		names[in.Name] = true
	}
}

func TestDefault_AllInstancesGenerate(t *testing.T) {
	t.Parallel()

	for _, in := range suite.Default() {
		in := in
		t.Run(in.Name, func(t *testing.T) {
			t.Parallel()

			g, err := in.Generate()
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			require.Positive(t, g.Edges.Len())
		})
	}
}

func TestInstance_GenerateIsReproducible(t *testing.T) {
	t.Parallel()

	in := suite.Default()[0]
	g1, err := in.Generate()
	require.NoError(t, err)
	g2, err := in.Generate()
	require.NoError(t, err)
	require.True(t, g1.Edges.Equal(g2.Edges))
}

func TestInstance_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := suite.Instance{Name: "bogus", Kind: suite.Kind("nope")}.Generate()
	require.ErrorIs(t, err, suite.ErrUnknownKind)
}
