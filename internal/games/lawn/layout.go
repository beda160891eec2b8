package lawn

import (
	"math"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

const (
	hudHeight    = 2 // status line + separator
	footerHeight = 1 // key hints
	minCellW     = 3
	minCellH     = 1
	maxCellW     = 12
	maxCellH     = 5
)

// layout maps the world grid (toolbar row + lanes) onto terminal cells.
// Each world cell becomes a cellW x cellH block of characters.
type layout struct {
	cellW, cellH int
	offX, offY   int
	rows, cols   int // world rows include the toolbar
	cell         float64
	tooSmall     bool
}

func newLayout(screenW, screenH int, cfg sim.Config) layout {
	l := layout{
		rows: cfg.Rows + 1,
		cols: cfg.Cols,
		cell: cfg.CellSize,
	}

	availW := screenW
	availH := screenH - hudHeight - footerHeight

	l.cellW = min(availW/l.cols, maxCellW)
	l.cellH = min(availH/l.rows, maxCellH)
	if l.cellW < minCellW || l.cellH < minCellH {
		l.tooSmall = true
		return l
	}

	l.offX = (screenW - l.cols*l.cellW) / 2
	l.offY = hudHeight + (availH-l.rows*l.cellH)/2
	return l
}

// field is the terminal rectangle covered by the world grid.
func (l layout) field() core.Rect {
	return core.NewRect(l.offX, l.offY, l.cols*l.cellW, l.rows*l.cellH)
}

// cellRect is the terminal rectangle of a world cell; row 0 is the toolbar.
func (l layout) cellRect(row, col int) core.Rect {
	return core.NewRect(l.offX+col*l.cellW, l.offY+row*l.cellH, l.cellW, l.cellH)
}

// toWorld converts a terminal cell to the world point at its centre.
// ok is false outside the field.
func (l layout) toWorld(tx, ty int) (x, y float64, ok bool) {
	if l.tooSmall || !l.field().Contains(tx, ty) {
		return 0, 0, false
	}
	x = (float64(tx-l.offX) + 0.5) * l.cell / float64(l.cellW)
	y = (float64(ty-l.offY) + 0.5) * l.cell / float64(l.cellH)
	return x, y, true
}

// toScreen converts a world point to the terminal cell containing it.
func (l layout) toScreen(x, y float64) (tx, ty int) {
	tx = l.offX + int(math.Floor(x*float64(l.cellW)/l.cell))
	ty = l.offY + int(math.Floor(y*float64(l.cellH)/l.cell))
	return tx, ty
}
