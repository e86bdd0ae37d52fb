package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
)

// textGrid is a Walkable drawn as rows of text: '#' is a wall, anything
// else is open.
type textGrid []string

func (t textGrid) Width() int  { return len(t[0]) }
func (t textGrid) Height() int { return len(t) }

func (t textGrid) InBounds(p lattice.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(t) && p.X < len(t[0])
}

func (t textGrid) IsWall(p lattice.Point) bool {
	return !t.InBounds(p) || t[p.Y][p.X] == '#'
}

func (t textGrid) Neighbors(p lattice.Point) []lattice.Point {
	var out []lattice.Point
	for _, d := range lattice.Cardinals {
		if q := p.Add(d); !t.IsWall(q) {
			out = append(out, q)
		}
	}
	return out
}

// maze builds a generated (and optionally braided) grid. The draw cap is
// raised so large benchmark sizes complete.
func maze(t testing.TB, w, h int, seed int64, braid float64) *lattice.Grid {
	t.Helper()
	g, err := lattice.New(w, h, lattice.WithSeed(seed))
	require.NoError(t, err)
	_, err = generator.Generate(g, generator.WithMaxDraws(1<<24))
	require.NoError(t, err)
	if braid > 0 {
		_, err = generator.Braid(g, braid)
		require.NoError(t, err)
	}
	return g
}

// requireValidPath asserts the structural path invariants.
func requireValidPath(t *testing.T, g interface {
	IsWall(lattice.Point) bool
}, path []lattice.Point, start, end lattice.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	seen := map[lattice.Point]bool{}
	for i, p := range path {
		require.False(t, g.IsWall(p), "step %d at %v is a wall", i, p)
		require.False(t, seen[p], "step %d revisits %v", i, p)
		seen[p] = true
		if i > 0 {
			require.Equal(t, 1, path[i-1].Manhattan(p), "steps %d→%d not adjacent", i-1, i)
		}
	}
}
