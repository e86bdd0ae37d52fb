package lattice

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Grid is a W×H maze lattice. A Grid is owned by a single caller: generators
// mutate it through Open and Union, path finders only read it.
type Grid struct {
	width, height int
	open          []bool
	regions       *forest
	start, end    Point
	seed          int64
	rng           *rand.Rand
	nextID        RegionID
}

// New builds a width×height lattice.
//
// Every cell first receives a fresh region id, then every even row and every
// even column is overwritten to Wall, leaving the odd,odd rooms open and each
// in a region of its own. Start (0, H/2) and End (W-1, H/2) are opened with
// fresh ids shared with no other cell.
//
// Returns ErrInvalidSize when width or height is below MinSize.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = time.Now().UnixNano()
	}

	n := width * height
	g := &Grid{
		width:   width,
		height:  height,
		open:    make([]bool, n),
		regions: newForest(n),
		start:   Point{X: 0, Y: height / 2},
		end:     Point{X: width - 1, Y: height / 2},
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		g.regions.label[i] = g.fresh()
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.open[g.index(Point{x, y})] = x%2 == 1 && y%2 == 1
		}
	}
	for _, p := range []Point{g.start, g.end} {
		i := g.index(p)
		g.open[i] = true
		g.regions.relabel(i, g.fresh())
	}

	return g, nil
}

// fresh hands out the next unused RegionID.
func (g *Grid) fresh() RegionID {
	g.nextID++
	return g.nextID
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the entry cell (0, H/2).
func (g *Grid) Start() Point { return g.start }

// End returns the exit cell (W-1, H/2).
func (g *Grid) End() Point { return g.end }

// Seed returns the seed the grid's generator was created with.
func (g *Grid) Seed() int64 { return g.seed }

// Rand returns the grid's pseudo-random generator. Generation and braiding
// draw from it in that order; nothing else should.
func (g *Grid) Rand() *rand.Rand { return g.rng }

// InBounds reports whether p lies within [0,W)×[0,H).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Interior reports whether p lies within [1,W-2]×[1,H-2].
func (g *Grid) Interior(p Point) bool {
	return p.X >= 1 && p.X <= g.width-2 && p.Y >= 1 && p.Y <= g.height-2
}

// Kind classifies p by coordinate parity. Bounds are not checked.
func (g *Grid) Kind(p Point) Kind {
	switch {
	case p.X%2 == 1 && p.Y%2 == 1:
		return Room
	case p.X%2 == 0 && p.Y%2 == 0:
		return Pillar
	default:
		return Door
	}
}

// IsWall reports whether p is a wall. Coordinates outside the grid count as
// walls so neighbourhood tests need no separate bounds check.
func (g *Grid) IsWall(p Point) bool {
	if !g.InBounds(p) {
		return true
	}
	return !g.open[g.index(p)]
}

// Region returns the region of p, or NoRegion for walls and out-of-bounds points.
func (g *Grid) Region(p Point) RegionID {
	if g.IsWall(p) {
		return NoRegion
	}
	return g.regions.labelOf(g.index(p))
}

// At returns the tagged cell at p.
func (g *Grid) At(p Point) (Cell, error) {
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	return Cell{Point: p, Region: g.Region(p)}, nil
}

// Neighbors returns the open 4-neighbours of p in N, E, S, W order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Cardinals))
	for _, d := range Cardinals {
		q := p.Add(d)
		if !g.IsWall(q) {
			out = append(out, q)
		}
	}

	return out
}

// Rooms returns every interior room in row-major order.
func (g *Grid) Rooms() []Point {
	rooms := make([]Point, 0, ((g.width-1)/2)*((g.height-1)/2))
	for y := 1; y <= g.height-2; y += 2 {
		for x := 1; x <= g.width-2; x += 2 {
			rooms = append(rooms, Point{x, y})
		}
	}

	return rooms
}

// CountOpen counts open interior cells of the given kind.
func (g *Grid) CountOpen(kind Kind) int {
	n := 0
	for y := 1; y <= g.height-2; y++ {
		for x := 1; x <= g.width-2; x++ {
			p := Point{x, y}
			if g.Kind(p) == kind && !g.IsWall(p) {
				n++
			}
		}
	}

	return n
}

// Regions counts the distinct regions among open interior cells.
// Complexity: O(W×H).
func (g *Grid) Regions() int {
	seen := make(map[RegionID]struct{})
	for y := 1; y <= g.height-2; y++ {
		for x := 1; x <= g.width-2; x++ {
			if id := g.Region(Point{x, y}); id != NoRegion {
				seen[id] = struct{}{}
			}
		}
	}

	return len(seen)
}

// Open turns the wall at p into an open cell in a singleton region. Opening
// an already open cell is a no-op; open cells never turn back into walls.
func (g *Grid) Open(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	g.open[g.index(p)] = true

	return nil
}

// Union merges the region of absorb into the region of keep: every cell of
// absorb's region now reports keep's RegionID. It reports false when both
// already share a region. Both cells must be open.
func (g *Grid) Union(keep, absorb Point) (bool, error) {
	for _, p := range []Point{keep, absorb} {
		if !g.InBounds(p) {
			return false, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
		}
		if g.IsWall(p) {
			return false, fmt.Errorf("%w: %v", ErrWall, p)
		}
	}

	return g.regions.union(g.index(keep), g.index(absorb)), nil
}

// Matrix returns a fresh row-major [y][x] view of region ids with NoRegion
// for walls. It is the read-only view renderers colour-map.
func (g *Grid) Matrix() [][]RegionID {
	m := make([][]RegionID, g.height)
	for y := range m {
		m[y] = make([]RegionID, g.width)
		for x := range m[y] {
			m[y][x] = g.Region(Point{x, y})
		}
	}

	return m
}

// Clone returns a deep copy of the cells and regions. The clone's generator
// is re-seeded with Seed, so its random sequence restarts from the beginning.
func (g *Grid) Clone() *Grid {
	c := *g
	c.open = make([]bool, len(g.open))
	copy(c.open, g.open)
	c.regions = g.regions.clone()
	c.rng = rand.New(rand.NewSource(g.seed))

	return &c
}

// String renders the lattice as text: '#' for walls, '.' for open cells,
// 'S' and 'E' for the endpoints.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			switch {
			case p == g.start:
				sb.WriteByte('S')
			case p == g.end:
				sb.WriteByte('E')
			case g.IsWall(p):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
