//go:build ebiten

package app

import (
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Universe to the ebiten.Game interface. Every frame runs
// one step (unless paused) and redraws the whole board; mutations from input
// land between steps, never during one.
type Game struct {
	universe *life.Universe
	painter  *render.Painter
	hud      *ui.HUD

	paused    bool
	tickOnce  bool
	resizeErr error
}

// New constructs a Game for the provided universe and wires the resize
// notification: dimension changes reallocate the surface and the window.
func New(u *life.Universe) (*Game, error) {
	painter, err := render.NewPainter(u.Size())
	if err != nil {
		return nil, err
	}
	g := &Game{universe: u, painter: painter, hud: ui.NewHUD(u)}
	u.OnResize(func(w, h int) {
		if err := g.painter.Resize(w, h); err != nil {
			g.resizeErr = err
			return
		}
		ebiten.SetWindowSize(render.SurfaceSize(u.Size()))
	})
	return g, nil
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if g.resizeErr != nil {
		return g.resizeErr
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.universe.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.universe.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	if err := g.handleResizeKeys(); err != nil {
		return err
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := render.CellAt(x, y, g.universe.Size()); ok {
			if err := g.universe.ToggleCell(p.Row, p.Col); err != nil {
				return err
			}
		}
	}

	if !g.paused || g.tickOnce {
		g.universe.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleResizeKeys() error {
	w, h := g.universe.Width(), g.universe.Height()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.universe.SetWidth(w + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && w > 1:
		g.universe.SetWidth(w - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.universe.SetHeight(h + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && h > 1:
		g.universe.SetHeight(h - 1)
	}
	return g.resizeErr
}

// Draw repaints the grid lines and every cell, then composites the surface
// and HUD. Repainting is idempotent; a frame with no Update changes draws
// the same image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.DrawGrid()
	g.painter.DrawCells(g.universe.Cells())
	screen.DrawImage(g.painter.Surface(), nil)
	g.hud.Draw(screen, g.paused)
}

// Layout reports the surface pixel dimensions for the current board.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.SurfaceSize(g.universe.Size())
}
