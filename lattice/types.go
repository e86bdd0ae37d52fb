package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidSize indicates a width or height below MinSize.
	ErrInvalidSize = errors.New("lattice: width and height must be at least 3")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")
	// ErrWall indicates a region operation addressed a wall cell.
	ErrWall = errors.New("lattice: cell is a wall")
)

// MinSize is the smallest accepted width or height.
const MinSize = 3

// RegionID identifies a region. Identity is by equality only; the numeric
// value carries no meaning beyond distinguishing regions.
type RegionID uint32

// NoRegion is the Wall sentinel: Region reports it for every wall cell.
const NoRegion RegionID = 0

// Point is a lattice coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a coordinate plus its tag: Region == NoRegion means Wall.
type Cell struct {
	Point
	Region RegionID
}

// IsWall reports whether the cell is a wall.
func (c Cell) IsWall() bool { return c.Region == NoRegion }

// Kind classifies a coordinate by the parity of its indices.
type Kind int

const (
	// Pillar is an even,even cell. Pillars start as walls.
	Pillar Kind = iota
	// Door is a cell with exactly one even coordinate, sitting between two rooms.
	Door
	// Room is an odd,odd cell: a carvable maze cell.
	Room
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Pillar:
		return "pillar"
	case Door:
		return "door"
	case Room:
		return "room"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Cardinal offsets in the fixed order N, E, S, W. Every traversal in this
// module iterates neighbours in this order so results are reproducible.
var Cardinals = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Options configures Grid construction.
type Options struct {
	// Seed for the grid's pseudo-random generator. Ignored unless HasSeed.
	Seed int64
	// HasSeed distinguishes an explicit zero seed from "no seed".
	HasSeed bool
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the pseudo-random seed so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// DefaultOptions returns Options with no explicit seed.
func DefaultOptions() Options {
	return Options{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
