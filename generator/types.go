package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Sentinel errors returned by Generate and Braid.
var (
	// ErrNilGrid indicates a nil *lattice.Grid.
	ErrNilGrid = errors.New("generator: grid is nil")

	// ErrIncomplete indicates the draw cap was reached before a single region
	// covered every room. The partial maze is left in the grid.
	ErrIncomplete = errors.New("generator: draw cap reached before the maze spans")

	// ErrBadMaxDraws indicates a non-positive draw cap.
	ErrBadMaxDraws = errors.New("generator: MaxDraws must be positive")

	// ErrInvalidFraction indicates a braid fraction outside [0,1].
	ErrInvalidFraction = errors.New("generator: braid fraction must be within [0,1]")
)

// DefaultMaxDraws caps the number of random draws Generate performs.
const DefaultMaxDraws = 10000

// DefaultBraidFraction is the customary share of eligible walls Braid opens.
const DefaultBraidFraction = 0.05

// Anchor is the canonical interior cell whose region the endpoints and
// braided openings join.
var Anchor = lattice.Point{X: 1, Y: 1}

// Frame is one snapshot of the grid's region matrix, [y][x].
type Frame [][]lattice.RegionID

// Merge describes one successful merge step.
type Merge struct {
	Draw     int           // 1-based draw number that produced the merge
	Room     lattice.Point // drawn room; its region survives
	Door     lattice.Point // door opened between Room and Neighbor
	Neighbor lattice.Point // room two cells away; its region was absorbed
	Kept     lattice.RegionID
	Absorbed lattice.RegionID
}

// Options configures Generate.
type Options struct {
	// MaxDraws bounds the number of draws. Must be > 0.
	MaxDraws int

	// Trace records a Frame before the first draw, after every merge and
	// after finalization into Result.Trace.
	Trace bool

	// OnMerge, if set, is called after every merge.
	OnMerge func(m Merge)

	// internal error recorded during option parsing
	err error
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with MaxDraws = DefaultMaxDraws, tracing off
// and a no-op OnMerge hook.
func DefaultOptions() Options {
	return Options{
		MaxDraws: DefaultMaxDraws,
		OnMerge:  func(Merge) {},
	}
}

// WithMaxDraws overrides the draw cap. n <= 0 is recorded and surfaced as
// ErrBadMaxDraws when Generate runs.
func WithMaxDraws(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDraws, n)
			return
		}
		o.MaxDraws = n
	}
}

// WithTrace enables Frame recording.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnMerge registers a callback run after each merge.
func WithOnMerge(fn func(m Merge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// Result summarizes a Generate run.
type Result struct {
	Draws  int     // draws performed, including rejected ones
	Merges int     // successful merges, equal to the doors opened by spanning
	Gates  int     // gate cells opened next to Start/End during finalization
	Trace  []Frame // recorded frames when WithTrace is set
}
