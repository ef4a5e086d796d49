//go:build ebiten

package render

import (
	"errors"
	"fmt"
	"image/color"

	"golife/internal/core"
	"golife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrSurfaceUnavailable reports that a drawing surface could not be created
// for the requested board dimensions.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Painter owns the offscreen surface a board is drawn onto. The simulation
// core never sees it; the host reacts to universe resize notifications by
// calling Resize.
type Painter struct {
	size    core.Size
	surface *ebiten.Image
}

// NewPainter allocates a surface sized for the given board.
func NewPainter(size core.Size) (*Painter, error) {
	p := &Painter{}
	if err := p.Resize(size.W, size.H); err != nil {
		return nil, err
	}
	return p, nil
}

// Resize replaces the surface with one sized for a w x h board. The old
// surface, if any, is kept on failure.
func (p *Painter) Resize(w, h int) error {
	size := core.Size{W: w, H: h}
	if size.Area() == 0 {
		return fmt.Errorf("%w: %dx%d board", ErrSurfaceUnavailable, w, h)
	}
	pw, ph := SurfaceSize(size)
	p.size = size
	p.surface = ebiten.NewImage(pw, ph)
	return nil
}

// Surface exposes the drawn image for compositing onto the screen.
func (p *Painter) Surface() *ebiten.Image { return p.surface }

// Size returns the board dimensions the surface was allocated for.
func (p *Painter) Size() core.Size { return p.size }

// DrawGrid strokes the 1px separator lines. Idempotent: repeated calls
// redraw the same lines.
func (p *Painter) DrawGrid() {
	pw, ph := SurfaceSize(p.size)

	for i := 0; i <= p.size.W; i++ {
		x := float32(i*(CellSize+1)) + 0.5
		vector.StrokeLine(p.surface, x, 0, x, float32(ph), 1, gridColor, false)
	}
	for j := 0; j <= p.size.H; j++ {
		y := float32(j*(CellSize+1)) + 0.5
		vector.StrokeLine(p.surface, 0, y, float32(pw), y, 1, gridColor, false)
	}
}

// DrawCells fills one square per cell. Alive cells are filled first, then
// dead cells, so the fill color changes twice per frame instead of per cell.
// Cell views from a stale generation (wrong length) are ignored.
func (p *Painter) DrawCells(cells []life.Cell) {
	if len(cells) != p.size.Area() {
		return
	}
	p.fillPass(cells, life.Alive, aliveColor)
	p.fillPass(cells, life.Dead, deadColor)
}

func (p *Painter) fillPass(cells []life.Cell, state life.Cell, clr color.Color) {
	for row := 0; row < p.size.H; row++ {
		for col := 0; col < p.size.W; col++ {
			if cells[row*p.size.W+col] != state {
				continue
			}
			x, y := CellOrigin(row, col)
			vector.DrawFilledRect(p.surface, float32(x), float32(y), CellSize, CellSize, clr, false)
		}
	}
}
