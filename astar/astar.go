package astar

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Solve returns a shortest path from start to end through the open cells of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must lie inside g (wrapped lattice.ErrOutOfBounds).
//  3. start and end must be open (ErrBlockedEndpoint).
//
// The search stops as soon as end is popped from the open set. If the open
// set empties first, Solve returns ErrNoPath.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Solve(g Walkable, start, end lattice.Point, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		end:     end,
		options: cfg,
		open:    heap.New(less),
		gScore:  make(map[lattice.Point]int),
		parent:  make(map[lattice.Point]lattice.Point),
		closed:  mapset.New[lattice.Point](),
	}
	r.push(start, 0)

	return r.process(start)
}

// SolveGrid solves g from its Start to its End.
func SolveGrid(g *lattice.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return Solve(g, g.Start(), g.End(), opts...)
}

// validate runs the shared endpoint checks of Solve and ShortestDistance.
func validate(g Walkable, start, end lattice.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	if gr, ok := g.(*lattice.Grid); ok && gr == nil {
		return ErrNilGrid
	}
	for _, p := range []lattice.Point{start, end} {
		if !g.InBounds(p) {
			return fmt.Errorf("astar: endpoint %v: %w", p, lattice.ErrOutOfBounds)
		}
		if g.IsWall(p) {
			return fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	return nil
}

// node is an open-set entry. Stale entries left behind by a g improvement are
// skipped when popped because their cell is already closed.
type node struct {
	p lattice.Point
	f int
	g int
}

// less orders nodes by f, then g, then x, then y.
func less(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	if a.p.X != b.p.X {
		return a.p.X < b.p.X
	}
	return a.p.Y < b.p.Y
}

// runner holds the mutable state for a single Solve call.
type runner struct {
	g        Walkable
	end      lattice.Point
	options  Options
	open     *heap.Heap[node]
	gScore   map[lattice.Point]int           // best known g per discovered cell
	parent   map[lattice.Point]lattice.Point // predecessor on the best known path
	closed   mapset.Set[lattice.Point]
	expanded int
}

func (r *runner) push(p lattice.Point, g int) {
	r.gScore[p] = g
	r.open.Push(node{p: p, f: g + p.Manhattan(r.end), g: g})
}

// process is the main loop: pop the minimal node, close it, stop at end,
// otherwise relax its neighbours.
func (r *runner) process(start lattice.Point) (*Result, error) {
	for {
		cur, ok := r.open.Pop()
		if !ok {
			return nil, fmt.Errorf("%w: %v → %v after %d expansions", ErrNoPath, start, r.end, r.expanded)
		}
		if r.closed.Has(cur.p) {
			continue
		}
		r.closed.Put(cur.p)
		r.expanded++
		r.options.OnExpand(cur.p, cur.g)

		if cur.p == r.end {
			return r.result(start), nil
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, r.expanded)
		}
		r.relax(cur)
	}
}

// relax pushes every open, unclosed neighbour whose g improves.
func (r *runner) relax(cur node) {
	next := cur.g + 1
	for _, q := range r.g.Neighbors(cur.p) {
		if r.closed.Has(q) {
			continue
		}
		if old, seen := r.gScore[q]; seen && next >= old {
			continue
		}
		r.parent[q] = cur.p
		r.push(q, next)
	}
}

// result walks parent links back from end and reverses them.
func (r *runner) result(start lattice.Point) *Result {
	path := []lattice.Point{r.end}
	for cur := r.end; cur != start; {
		cur = r.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{
		Path:     path,
		Cost:     len(path) - 1,
		Expanded: r.expanded,
		width:    r.g.Width(),
		height:   r.g.Height(),
	}
}
