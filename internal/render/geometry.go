package render

import (
	"image/color"

	"golife/internal/core"
	"golife/internal/life"
)

// CellSize is the edge length of one cell square in pixels. Cells are
// separated by 1px grid lines, so a w x h board occupies
// (CellSize+1)*w+1 by (CellSize+1)*h+1 pixels.
const CellSize = 15

var (
	gridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	deadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	aliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// SurfaceSize returns the pixel dimensions of the drawing surface for a
// board of the given size. Degenerate boards still get a 1x1 surface (the
// outer grid line).
func SurfaceSize(size core.Size) (int, int) {
	w, h := size.W, size.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return (CellSize+1)*w + 1, (CellSize+1)*h + 1
}

// CellOrigin returns the top-left pixel of the cell square at (row, col).
func CellOrigin(row, col int) (x, y int) {
	return col*(CellSize+1) + 1, row*(CellSize+1) + 1
}

// CellAt maps a surface pixel back to the cell containing it, clamping
// coordinates that land on the outer edge. ok is false when the pixel lies
// outside the surface or the board is empty.
func CellAt(x, y int, size core.Size) (p life.Point, ok bool) {
	if size.Area() == 0 {
		return life.Point{}, false
	}
	pw, ph := SurfaceSize(size)
	if x < 0 || y < 0 || x >= pw || y >= ph {
		return life.Point{}, false
	}
	col := x / (CellSize + 1)
	if col >= size.W {
		col = size.W - 1
	}
	row := y / (CellSize + 1)
	if row >= size.H {
		row = size.H - 1
	}
	return life.Point{Row: row, Col: col}, true
}
