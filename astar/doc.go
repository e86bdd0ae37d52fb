// Package astar finds shortest paths through a maze lattice with A*.
//
// A* expands cells in order of f = g + h, where g is the number of steps from
// the start and h is the Manhattan distance to the end. On a 4-connected grid
// with unit step cost Manhattan distance is admissible and consistent, so the
// first time the end cell is popped from the open set its path is optimal.
//
// Determinism:
//
//	Ties on f are broken by lowest g, then by lowest (x, y) lexicographically.
//	Neighbours are generated in the fixed N, E, S, W order. The same grid
//	therefore always yields the same path.
//
// Complexity:
//
//   - Time:  O(V log V) where V = open cells; each cell is closed once, each
//     relaxation pushes one heap entry (lazy decrease-key).
//   - Space: O(V) for the heap, the g-score and parent maps, and the closed set.
//
// Options:
//
//   - WithOnExpand(fn):     called for each closed cell with its g score.
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n closures.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid is nil.
//   - ErrBlockedEndpoint  if start or end is a wall.
//   - ErrNoPath           if the open set empties before the end is reached.
//   - ErrExpansionLimit   if the expansion cap is hit first.
//   - ErrBadMaxExpansions if WithMaxExpansions receives a negative value.
//   - lattice.ErrOutOfBounds (wrapped) if start or end lies outside the grid.
//
// Example usage:
//
//	res, err := astar.SolveGrid(g)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // regenerate with another seed
//	}
//	fmt.Println("steps:", res.Cost)
package astar
