package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/lattice"
)

// ShortestDistance returns the number of steps on a shortest path from start
// to end using plain breadth-first search. It shares Solve's validation and
// serves as the reference Solve's optimality is checked against.
//
// Complexity: O(V) time and memory.
func ShortestDistance(g Walkable, start, end lattice.Point) (int, error) {
	if err := validate(g, start, end); err != nil {
		return 0, err
	}
	visited := mapset.New[lattice.Point]()
	visited.Put(start)
	frontier := []lattice.Point{start}
	for depth := 0; len(frontier) > 0; depth++ {
		var next []lattice.Point
		for _, p := range frontier {
			if p == end {
				return depth, nil
			}
			for _, q := range g.Neighbors(p) {
				if !visited.Has(q) {
					visited.Put(q)
					next = append(next, q)
				}
			}
		}
		frontier = next
	}

	return 0, fmt.Errorf("%w: %v → %v", ErrNoPath, start, end)
}
