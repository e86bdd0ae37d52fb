package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/astar"
	"github.com/katalvlaran/labyrinth/lattice"
	"github.com/katalvlaran/labyrinth/render"
)

// corridor returns a 7×5 lattice with one hand-carved corridor from Start
// to End.
func corridor(t testing.TB) *lattice.Grid {
	t.Helper()
	g, err := lattice.New(7, 5, lattice.WithSeed(1))
	require.NoError(t, err)
	for _, p := range []lattice.Point{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 2}} {
		require.NoError(t, g.Open(p))
	}
	return g
}

func TestWriteASCII_NoMask(t *testing.T) {
	m := [][]lattice.RegionID{
		{0, 0, 0},
		{4, 4, 9},
		{0, 0, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, render.WriteASCII(&buf, m, nil))
	assert.Equal(t, "###\n   \n###\n", buf.String())
}

func TestWriteASCII_Path(t *testing.T) {
	g := corridor(t)
	res, err := astar.SolveGrid(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteASCII(&buf, g.Matrix(), res.Mask()))
	want := strings.Join([]string{
		"#######",
		"#*****#",
		"**###**",
		"# # # #",
		"#######",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteASCII_Shape(t *testing.T) {
	m := [][]lattice.RegionID{{0, 1}, {1, 0}}
	cases := map[string][][]bool{
		"Rows":    {{false, false}},
		"Columns": {{false, false}, {true}},
	}
	for name, mask := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := render.WriteASCII(&buf, m, mask)
			assert.ErrorIs(t, err, render.ErrShape)
			assert.Zero(t, buf.Len())
		})
	}
}
