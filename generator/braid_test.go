package generator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
)

func TestBraid_Validation(t *testing.T) {
	_, err := generator.Braid(nil, 0.1)
	assert.ErrorIs(t, err, generator.ErrNilGrid)

	g := newGrid(t, 7, 7, 1)
	for _, f := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		n, err := generator.Braid(g, f)
		assert.ErrorIs(t, err, generator.ErrInvalidFraction, "fraction %v", f)
		assert.Zero(t, n)
	}
}

// TestBraid_ZeroFraction never opens anything.
func TestBraid_ZeroFraction(t *testing.T) {
	g := newGrid(t, 11, 11, 4)
	_, err := generator.Generate(g)
	require.NoError(t, err)
	before := g.String()

	n, err := generator.Braid(g, 0)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, before, g.String())
}

// TestBraid_Monotonic checks that braiding only ever opens cells and that the
// reported count matches the cells that changed.
func TestBraid_Monotonic(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := newGrid(t, 15, 15, seed)
		_, err := generator.Generate(g)
		require.NoError(t, err)
		before := g.Clone()
		doorsBefore := g.CountOpen(lattice.Door)

		n, err := generator.Braid(g, 0.5)
		require.NoError(t, err)

		changed := 0
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				p := lattice.Point{X: x, Y: y}
				if !before.IsWall(p) {
					assert.False(t, g.IsWall(p), "seed %d: %v closed by braid", seed, p)
				} else if !g.IsWall(p) {
					changed++
				}
			}
		}
		assert.Equal(t, n, changed, "seed %d", seed)
		assert.GreaterOrEqual(t, g.CountOpen(lattice.Door), doorsBefore)
		assert.Equal(t, 1, g.Regions(), "braided cells join the main region")
	}
}

// TestBraid_UsesSnapshot builds a lattice where evaluating against the live
// grid would reject the second candidate: opening pillar (2,2) first would
// leave door (3,2) with an open west side.
func TestBraid_UsesSnapshot(t *testing.T) {
	g := newGrid(t, 7, 7, 1)
	require.NoError(t, g.Open(lattice.Point{X: 2, Y: 1}))
	require.NoError(t, g.Open(lattice.Point{X: 2, Y: 3}))

	_, err := generator.Braid(g, 1)
	require.NoError(t, err)
	assert.False(t, g.IsWall(lattice.Point{X: 2, Y: 2}), "pillar with open N/S and walled E/W")
	assert.False(t, g.IsWall(lattice.Point{X: 3, Y: 2}), "door judged against the pre-braid snapshot")
}

// TestBraid_Deterministic: same seed, same braid.
func TestBraid_Deterministic(t *testing.T) {
	build := func() *lattice.Grid {
		g := newGrid(t, 21, 13, 99)
		_, err := generator.Generate(g)
		require.NoError(t, err)
		_, err = generator.Braid(g, generator.DefaultBraidFraction*4)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Matrix(), b.Matrix())
}
