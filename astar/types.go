package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Sentinel errors returned by Solve and ShortestDistance.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBlockedEndpoint indicates that start or end is a wall.
	ErrBlockedEndpoint = errors.New("astar: start or end is a wall")

	// ErrNoPath indicates that end is unreachable from start.
	ErrNoPath = errors.New("astar: no path between start and end")

	// ErrExpansionLimit indicates that MaxExpansions cells were closed before
	// reaching end.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions cannot be negative")
)

// Walkable is the read-only view of a lattice that the searches need.
// *lattice.Grid satisfies it.
type Walkable interface {
	Width() int
	Height() int
	InBounds(p lattice.Point) bool
	IsWall(p lattice.Point) bool
	// Neighbors returns the open 4-neighbours of p in a fixed order.
	Neighbors(p lattice.Point) []lattice.Point
}

// Options configures Solve.
type Options struct {
	// OnExpand is called when a cell is closed, with its g score.
	OnExpand func(p lattice.Point, g int)

	// MaxExpansions, if > 0, bounds the number of closed cells.
	// A value of 0 disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnExpand and no expansion cap.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(lattice.Point, int) {},
		MaxExpansions: 0,
	}
}

// WithOnExpand registers a callback run for every closed cell.
func WithOnExpand(fn func(p lattice.Point, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of closed cells.
//
//	n > 0:  limit to n
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrBadMaxExpansions
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxExpansions, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds a solved path.
//   - Path: cells from start to end inclusive; consecutive cells are 4-adjacent.
//   - Cost: number of steps, len(Path)-1.
//   - Expanded: number of cells closed by the search.
type Result struct {
	Path     []lattice.Point
	Cost     int
	Expanded int

	width, height int
}

// Contains reports whether p lies on the path.
func (r *Result) Contains(p lattice.Point) bool {
	for _, q := range r.Path {
		if q == p {
			return true
		}
	}
	return false
}

// Mask returns a [y][x] boolean view over the grid's dimensions with exactly
// the path cells set. It is derived from Path on every call.
func (r *Result) Mask() [][]bool {
	m := make([][]bool, r.height)
	for y := range m {
		m[y] = make([]bool, r.width)
	}
	for _, p := range r.Path {
		m[p.Y][p.X] = true
	}

	return m
}
