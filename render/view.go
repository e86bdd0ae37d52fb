package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/lattice"
)

// Colours used by View. Regions cycle through the 6×6×6 xterm colour cube,
// skipping its black and white corners.
const (
	WallColor  = tcell.ColorBlack
	PathColor  = tcell.ColorRed
	cubeFirst  = 17
	cubeColors = 214
)

// RegionColor returns the fill colour of region id. Walls map to WallColor.
func RegionColor(id lattice.RegionID) tcell.Color {
	if id == lattice.NoRegion {
		return WallColor
	}
	return tcell.PaletteColor(cubeFirst + int(id%cubeColors))
}

// View paints region matrices on a tcell.Screen. Each lattice cell covers
// CellWidth terminal columns so that corridors look square.
type View struct {
	screen    tcell.Screen
	cellWidth int

	// last drawn state, repainted on resize
	matrix [][]lattice.RegionID
	mask   [][]bool
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithCellWidth sets the number of columns per cell. Values below 1 are
// ignored.
func WithCellWidth(n int) ViewOption {
	return func(v *View) {
		if n >= 1 {
			v.cellWidth = n
		}
	}
}

// NewView wraps an initialised screen. The caller owns the screen and calls
// Fini on it.
func NewView(s tcell.Screen, opts ...ViewOption) *View {
	v := &View{screen: s, cellWidth: 2}
	for _, opt := range opts {
		opt(v)
	}
	s.HideCursor()

	return v
}

// Draw paints m with the path mask on top and shows the result.
// Cells that do not fit on the screen are clipped.
func (v *View) Draw(m [][]lattice.RegionID, mask [][]bool) error {
	if err := checkShape(m, mask); err != nil {
		return err
	}
	v.matrix, v.mask = m, mask
	v.paint()

	return nil
}

func (v *View) paint() {
	v.screen.Clear()
	for y, row := range v.matrix {
		for x, id := range row {
			st := tcell.StyleDefault.Background(RegionColor(id))
			if onPath(v.mask, x, y) {
				st = tcell.StyleDefault.Background(PathColor)
			}
			for i := 0; i < v.cellWidth; i++ {
				v.screen.SetContent(x*v.cellWidth+i, y, ' ', nil, st)
			}
		}
	}
	v.screen.Show()
}

// Play draws frames in order, pausing delay between them. It stops early with
// ctx's error when ctx is done.
func (v *View) Play(ctx context.Context, frames [][][]lattice.RegionID, delay time.Duration) error {
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v.Draw(f, nil); err != nil {
			return err
		}
		if delay <= 0 || i == len(frames)-1 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil
}

// Wait blocks until the user presses q, Escape or Ctrl-C, or the screen is
// finalised. Resize events repaint the last drawn state.
func (v *View) Wait() {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.paint()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}
