package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/labyrinth/lattice"
)

// ErrShape indicates that a path mask does not match the matrix dimensions.
var ErrShape = errors.New("render: mask shape does not match matrix")

// Glyphs written by WriteASCII.
const (
	WallGlyph = '#'
	OpenGlyph = ' '
	PathGlyph = '*'
)

// WriteASCII writes m as one text line per row: WallGlyph for walls,
// PathGlyph for cells set in mask and OpenGlyph for other open cells.
func WriteASCII(w io.Writer, m [][]lattice.RegionID, mask [][]bool) error {
	if err := checkShape(m, mask); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y, row := range m {
		for x, id := range row {
			g := OpenGlyph
			switch {
			case onPath(mask, x, y):
				g = PathGlyph
			case id == lattice.NoRegion:
				g = WallGlyph
			}
			if _, err := bw.WriteRune(g); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// checkShape accepts a nil mask or one with exactly the rows and columns of m.
func checkShape(m [][]lattice.RegionID, mask [][]bool) error {
	if mask == nil {
		return nil
	}
	if len(mask) != len(m) {
		return fmt.Errorf("%w: %d rows, want %d", ErrShape, len(mask), len(m))
	}
	for y := range m {
		if len(mask[y]) != len(m[y]) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, y, len(mask[y]), len(m[y]))
		}
	}

	return nil
}

func onPath(mask [][]bool, x, y int) bool {
	return mask != nil && mask[y][x]
}
