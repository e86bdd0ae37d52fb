package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Braid opens a random share of straight-through wall connectors in g,
// turning a perfect maze into one with loops. It returns the number of
// cells opened.
//
// Every interior wall cell is visited in row-major order and draws one
// number; with probability fraction it becomes a candidate. A candidate is
// accepted when, in the pre-braid snapshot, its two neighbours on one axis are
// walls and its two neighbours on the other axis are open. Accepted cells are
// opened and joined to the Anchor region only after the scan, so earlier
// openings never change the eligibility of later candidates.
//
// Braid never closes a cell. Returns ErrInvalidFraction when fraction is
// NaN or outside [0,1].
//
// Complexity: O(W·H) time and memory.
func Braid(g *lattice.Grid, fraction float64) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidFraction, fraction)
	}

	snapshot := g.Clone()
	rng := g.Rand()
	var accepted []lattice.Point
	for y := 1; y <= g.Height()-2; y++ {
		for x := 1; x <= g.Width()-2; x++ {
			p := lattice.Point{X: x, Y: y}
			if !snapshot.IsWall(p) {
				continue
			}
			if rng.Float64() >= fraction {
				continue
			}
			if isConnector(snapshot, p) {
				accepted = append(accepted, p)
			}
		}
	}

	for _, p := range accepted {
		if err := g.Open(p); err != nil {
			return 0, fmt.Errorf("generator: braid %v: %w", p, err)
		}
		if _, err := g.Union(Anchor, p); err != nil {
			return 0, fmt.Errorf("generator: braid %v: %w", p, err)
		}
	}

	return len(accepted), nil
}

// isConnector reports whether p separates two open cells on one axis while
// being flanked by walls on the other.
func isConnector(g *lattice.Grid, p lattice.Point) bool {
	n := g.IsWall(p.Add(lattice.Cardinals[0]))
	e := g.IsWall(p.Add(lattice.Cardinals[1]))
	s := g.IsWall(p.Add(lattice.Cardinals[2]))
	w := g.IsWall(p.Add(lattice.Cardinals[3]))

	return (n && s && !e && !w) || (e && w && !n && !s)
}
