package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/lattice"
)

// TestIsConnector covers both orientations and the rejected shapes.
//
// Lattice 5×5 before any carving:
//
//	#####
//	#.#.#
//	S###E
//	#.#.#
//	#####
func TestIsConnector(t *testing.T) {
	g, err := lattice.New(5, 5, lattice.WithSeed(1))
	require.NoError(t, err)

	// Door (2,1): rooms east and west, walls north and south.
	assert.True(t, isConnector(g, lattice.Point{X: 2, Y: 1}))
	// Door (1,2): rooms north and south, wall east, start cell west.
	assert.False(t, isConnector(g, lattice.Point{X: 1, Y: 2}))
	// Door (3,2): rooms north and south, wall west, end cell east.
	assert.False(t, isConnector(g, lattice.Point{X: 3, Y: 2}))
	// Pillar (2,2): walls on all four sides.
	assert.False(t, isConnector(g, lattice.Point{X: 2, Y: 2}))

	require.NoError(t, g.Open(lattice.Point{X: 2, Y: 1}))
	require.NoError(t, g.Open(lattice.Point{X: 2, Y: 3}))
	// Pillar (2,2) now has open north and south, walls east and west.
	assert.True(t, isConnector(g, lattice.Point{X: 2, Y: 2}))
}

// TestBraid_FullFractionOpensEveryConnector: with fraction 1 every snapshot
// connector is opened, and nothing else.
func TestBraid_FullFractionOpensEveryConnector(t *testing.T) {
	g, err := lattice.New(11, 9, lattice.WithSeed(3))
	require.NoError(t, err)
	_, err = Generate(g)
	require.NoError(t, err)

	snap := g.Clone()
	want := 0
	for y := 1; y <= g.Height()-2; y++ {
		for x := 1; x <= g.Width()-2; x++ {
			p := lattice.Point{X: x, Y: y}
			if snap.IsWall(p) && isConnector(snap, p) {
				want++
			}
		}
	}

	n, err := Braid(g, 1)
	require.NoError(t, err)
	assert.Equal(t, want, n)
}
