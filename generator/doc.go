// Package generator carves perfect mazes into a lattice.Grid and optionally
// braids them.
//
// Generate performs randomized region merging, the union-merge cousin of
// randomized Kruskal: it repeatedly draws a random room and a random in-bounds
// direction, and when the room two cells away belongs to another region it
// opens the door between them and absorbs that region. It stops when a single
// region covers every interior room (a spanning tree, zero cycles) or when the
// draw cap is reached, in which case ErrIncomplete is returned together with
// the partial Result.
//
// Braid then opens a random subset of straight-through wall connectors,
// adding loops. Eligibility is judged against a snapshot taken before the
// pass, so the outcome for a fixed seed does not depend on scan order.
//
// Randomness:
//
//	All draws come from the grid's own generator (lattice.Grid.Rand). Per
//	Generate draw: one Intn for the room column, one for the room row, and one
//	for the direction when at least one direction is valid. Braid draws one
//	Float64 per interior wall cell in row-major order. Two grids built with
//	the same size and seed therefore produce identical mazes and traces.
//
// Complexity:
//
//   - Generate: O(D·α(W·H)) for D draws, plus O(W·H) per recorded trace frame.
//   - Braid:    O(W·H).
//
// Errors:
//
//   - ErrNilGrid:         nil grid.
//   - ErrIncomplete:      draw cap reached before the maze spans.
//   - ErrBadMaxDraws:     WithMaxDraws(n) with n <= 0.
//   - ErrInvalidFraction: braid fraction outside [0,1] or NaN.
package generator
