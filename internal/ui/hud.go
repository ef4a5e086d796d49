//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout in the bottom-left corner of the
// screen: board dimensions, generation counter, live-cell count and the
// paused marker.
type HUD struct {
	universe *life.Universe
	visible  bool
}

// NewHUD constructs a HUD bound to the provided universe.
func NewHUD(u *life.Universe) *HUD {
	return &HUD{universe: u, visible: true}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}
	u := h.universe
	msg := fmt.Sprintf("%dx%d  gen %d  pop %d", u.Width(), u.Height(), u.Generation(), u.Population())
	if paused {
		msg += "  [paused]"
	}

	face := basicfont.Face7x13
	y := screen.Bounds().Dy() - 6
	// Shadow first so the line stays legible over white cells.
	text.Draw(screen, msg, face, 5, y+1, color.RGBA{A: 200})
	text.Draw(screen, msg, face, 4, y, color.RGBA{R: 220, G: 40, B: 40, A: 255})
}
