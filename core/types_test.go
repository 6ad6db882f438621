package core_test

import (
	"testing"

	"github.com/katalvlaran/cliquegen/core"
	"github.com/stretchr/testify/require"
)

// TestNewEdge_Canonicalization verifies (min,max) normalization and the
// per-edge invariants guarded at construction.
func TestNewEdge_Canonicalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		u, v    int
		want    core.Edge
		wantErr error
	}{
		{name: "ordered pair kept", u: 1, v: 4, want: core.Edge{U: 1, V: 4}},
		{name: "reversed pair swapped", u: 4, v: 1, want: core.Edge{U: 1, V: 4}},
		{name: "zero endpoint valid", u: 0, v: 7, want: core.Edge{U: 0, V: 7}},
		{name: "self-loop rejected", u: 3, v: 3, wantErr: core.ErrSelfLoop},
		{name: "negative u rejected", u: -1, v: 2, wantErr: core.ErrNegativeVertex},
		{name: "negative v rejected", u: 2, v: -5, wantErr: core.ErrNegativeVertex},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, err := core.NewEdge(tc.u, tc.v)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, e)
		})
	}
}

func TestEdge_Less(t *testing.T) {
	t.Parallel()

	a := core.Edge{U: 0, V: 5}
	b := core.Edge{U: 0, V: 7}
	c := core.Edge{U: 1, V: 2}

	require.True(t, a.Less(b))  // same U, smaller V first
	require.True(t, b.Less(c))  // smaller U first
	require.False(t, c.Less(a)) // transitively after a
	require.False(t, a.Less(a)) // irreflexive
}
