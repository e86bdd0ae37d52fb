package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Generate carves a maze into g in place. Spanning yields a perfect maze
// (a tree over the rooms); when the middle row is even, finalization may open
// gate doors next to Start and End that close a cycle, so the result is then
// a tree plus at most Result.Gates extra doors.
//
// Steps:
//  1. Count the distinct interior regions. While more than one remains and
//     the draw cap is not reached, draw a random room and a random direction
//     whose target room stays inside the interior (no valid direction: the
//     draw is spent and another one follows).
//  2. If the target room belongs to another region, open the door between
//     them, join it to the drawn room's region and absorb the target's
//     region. Otherwise the edge would close a cycle and is skipped.
//  3. Finalize: open the gate cell next to Start and End when it is still a
//     wall, and absorb both endpoints into the Anchor region.
//
// Finalization also runs when the cap is hit, so callers that accept a
// partial maze still get attached endpoints. In that case the returned error
// wraps ErrIncomplete and the Result describes the partial run.
//
// Complexity: O(D·α(W·H)) for D draws; each traced frame adds O(W·H).
func Generate(g *lattice.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}

	r := &runner{
		g:       g,
		options: cfg,
		rng:     g.Rand(),
		cols:    (g.Width() - 1) / 2,
		rows:    (g.Height() - 1) / 2,
	}
	r.record()
	spanErr := r.span()
	if err := r.finalize(); err != nil {
		return r.res, err
	}
	r.record()

	return r.res, spanErr
}

// runner holds the mutable state of a single Generate call.
type runner struct {
	g          *lattice.Grid
	options    Options
	rng        *rand.Rand
	cols, rows int // rooms per row and per column
	res        Result
}

// span runs the draw loop until one region remains or the cap is reached.
func (r *runner) span() error {
	remaining := r.g.Regions()
	for remaining > 1 {
		if r.res.Draws >= r.options.MaxDraws {
			return fmt.Errorf("%w: %d regions left after %d draws", ErrIncomplete, remaining, r.res.Draws)
		}
		r.res.Draws++

		room := lattice.Point{X: 2*r.rng.Intn(r.cols) + 1, Y: 2*r.rng.Intn(r.rows) + 1}
		d, ok := r.direction(room)
		if !ok {
			continue
		}
		merged, err := r.merge(room, d)
		if err != nil {
			return err
		}
		if merged {
			remaining--
		}
	}

	return nil
}

// direction picks a uniformly random cardinal direction whose target room
// lies inside the interior. It reports false when none does.
func (r *runner) direction(room lattice.Point) (lattice.Point, bool) {
	var valid [len(lattice.Cardinals)]lattice.Point
	n := 0
	for _, d := range lattice.Cardinals {
		if r.g.Interior(room.Add(double(d))) {
			valid[n] = d
			n++
		}
	}
	if n == 0 {
		return lattice.Point{}, false
	}

	return valid[r.rng.Intn(n)], true
}

// merge opens the door from room towards d and absorbs the neighbour's
// region when the two rooms are in different regions.
func (r *runner) merge(room, d lattice.Point) (bool, error) {
	door, next := room.Add(d), room.Add(double(d))
	kept, absorbed := r.g.Region(room), r.g.Region(next)
	if kept == absorbed {
		return false, nil
	}
	if err := r.g.Open(door); err != nil {
		return false, fmt.Errorf("generator: open door %v: %w", door, err)
	}
	if _, err := r.g.Union(room, door); err != nil {
		return false, fmt.Errorf("generator: join door %v: %w", door, err)
	}
	if _, err := r.g.Union(room, next); err != nil {
		return false, fmt.Errorf("generator: absorb %v: %w", next, err)
	}

	r.res.Merges++
	r.options.OnMerge(Merge{
		Draw:     r.res.Draws,
		Room:     room,
		Door:     door,
		Neighbor: next,
		Kept:     kept,
		Absorbed: absorbed,
	})
	r.record()

	return true, nil
}

// finalize attaches Start and End to the Anchor region. The gate is the cell
// between an endpoint and the first interior column; on grids whose middle row
// is even it is a door that spanning may have left closed.
func (r *runner) finalize() error {
	mid := r.g.Height() / 2
	pairs := [2][2]lattice.Point{
		{r.g.Start(), {X: 1, Y: mid}},
		{r.g.End(), {X: r.g.Width() - 2, Y: mid}},
	}
	for _, pair := range pairs {
		endpoint, gate := pair[0], pair[1]
		if r.g.IsWall(gate) {
			if err := r.g.Open(gate); err != nil {
				return fmt.Errorf("generator: open gate %v: %w", gate, err)
			}
			if _, err := r.g.Union(Anchor, gate); err != nil {
				return fmt.Errorf("generator: join gate %v: %w", gate, err)
			}
			r.res.Gates++
		}
		if _, err := r.g.Union(Anchor, endpoint); err != nil {
			return fmt.Errorf("generator: attach endpoint %v: %w", endpoint, err)
		}
	}

	return nil
}

// record appends the current region matrix to the trace when tracing is on.
func (r *runner) record() {
	if r.options.Trace {
		r.res.Trace = append(r.res.Trace, r.g.Matrix())
	}
}

func double(d lattice.Point) lattice.Point {
	return lattice.Point{X: 2 * d.X, Y: 2 * d.Y}
}
