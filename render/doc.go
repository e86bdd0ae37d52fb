// Package render draws mazes produced by lattice, generator and astar.
//
// It consumes only the two read-only views the core exposes:
//
//   - the region matrix, lattice.Grid.Matrix() or a generator.Frame,
//     indexed [y][x], with lattice.NoRegion for walls;
//   - the path mask, astar.Result.Mask(), indexed [y][x].
//
// WriteASCII prints the maze as text. View paints it on a tcell.Screen,
// colouring every region on its own and overlaying the path, and can replay
// a generation trace frame by frame.
//
// A nil mask means "no path". A non-nil mask must have the matrix's shape,
// otherwise ErrShape is returned.
package render
