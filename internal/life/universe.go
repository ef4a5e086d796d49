package life

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golife/internal/core"
)

// ErrOutOfBounds reports a row/column pair outside the current grid.
var ErrOutOfBounds = errors.New("cell position out of bounds")

// ErrMaskSize reports a seed mask whose length does not match the grid.
var ErrMaskSize = errors.New("seed mask length does not match grid")

// Universe implements Conway's Game of Life (B3/S23) on a toroidal grid.
//
// Cells are stored row-major in a flat slice; the invariant
// len(cells) == width*height holds after every operation. Generations are
// double-buffered: Step writes the next generation into a scratch buffer and
// swaps, so a tick is atomic and never reads partially-updated state.
//
// The Universe assumes exclusive single-goroutine access. Callers that drive
// it from multiple goroutines must serialize externally (see view.Runner).
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell

	rng      *core.RNG
	gen      uint64
	onResize func(w, h int)
}

// New returns a Universe with the provided dimensions, every cell
// independently Alive or Dead with probability 0.5. A nil rng selects a
// time-seeded source; tests pass a fixed-seed core.NewRNG for reproducible
// boards.
func New(width, height int, rng *core.RNG) *Universe {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}
	u := &Universe{
		w:   width,
		h:   height,
		cur: make([]Cell, width*height),
		nxt: make([]Cell, width*height),
		rng: rng,
	}
	u.fillRandom()
	return u
}

// Width returns the grid width in cells.
func (u *Universe) Width() int { return u.w }

// Height returns the grid height in cells.
func (u *Universe) Height() int { return u.h }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Cells exposes the current generation for zero-copy rendering. The returned
// slice is a view, not a copy: it is invalidated by the next Step, Randomize,
// Seed or resize call. Use Generation to detect staleness.
func (u *Universe) Cells() []Cell { return u.cur }

// Generation returns a counter that increments whenever the cell view
// returned by Cells is replaced.
func (u *Universe) Generation() uint64 { return u.gen }

// Population returns the number of Alive cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Index converts a row/column pair to a flat slice index. Out-of-range
// coordinates return ErrOutOfBounds.
func (u *Universe) Index(row, col int) (int, error) {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return 0, fmt.Errorf("%w: row %d, col %d in %dx%d grid", ErrOutOfBounds, row, col, u.w, u.h)
	}
	return row*u.w + col, nil
}

// LiveNeighborCount returns how many of the 8 toroidal neighbors of
// (row, col) are Alive. Edges wrap to the opposite side; on 1-wide or 1-tall
// grids some offsets land on the same cell and are counted once per offset,
// matching the modular formula.
//
// Precondition: (row, col) is in range.
func (u *Universe) LiveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := ((row+dr)%u.h + u.h) % u.h
			nc := ((col+dc)%u.w + u.w) % u.w
			if u.cur[nr*u.w+nc] == Alive {
				count++
			}
		}
	}
	return count
}

// Step advances the universe by one generation. The whole next generation is
// computed from a snapshot of the current one, then swapped in atomically;
// visitation order cannot leak into the result.
func (u *Universe) Step() {
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			idx := row*u.w + col
			neighbors := u.LiveNeighborCount(row, col)
			alive := u.cur[idx] == Alive

			u.nxt[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				u.nxt[idx] = Alive
			}
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.gen++
}

// ToggleCell flips the cell at (row, col) between Dead and Alive.
func (u *Universe) ToggleCell(row, col int) error {
	idx, err := u.Index(row, col)
	if err != nil {
		return err
	}
	u.cur[idx] = u.cur[idx].Toggled()
	return nil
}

// SetAliveCell forces the cell at (row, col) to Alive.
func (u *Universe) SetAliveCell(row, col int) error {
	idx, err := u.Index(row, col)
	if err != nil {
		return err
	}
	u.cur[idx] = Alive
	return nil
}

// SetCells marks every listed position Alive. Duplicates are harmless; other
// cells are untouched. The first out-of-range point aborts with
// ErrOutOfBounds, leaving earlier points applied.
func (u *Universe) SetCells(points []Point) error {
	for _, p := range points {
		if err := u.SetAliveCell(p.Row, p.Col); err != nil {
			return err
		}
	}
	return nil
}

// Randomize reassigns every cell a fresh independent 50/50 Dead/Alive value,
// the same distribution as construction.
func (u *Universe) Randomize() {
	u.fillRandom()
	u.gen++
}

// Seed replaces the whole board: cells whose mask entry is true become Alive,
// all others Dead. The mask is row-major and must cover the grid exactly.
func (u *Universe) Seed(mask []bool) error {
	if len(mask) != len(u.cur) {
		return fmt.Errorf("%w: mask %d, grid %d", ErrMaskSize, len(mask), len(u.cur))
	}
	for i, on := range mask {
		if on {
			u.cur[i] = Alive
		} else {
			u.cur[i] = Dead
		}
	}
	u.gen++
	return nil
}

// Clear kills every cell without changing dimensions.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i] = Dead
	}
	u.gen++
}

// SetWidth changes the grid width. Every cell resets to Dead and both
// generation buffers are reallocated; registered resize observers fire after
// the reset.
func (u *Universe) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	u.w = width
	u.reallocate()
}

// SetHeight changes the grid height. Same reset semantics as SetWidth.
func (u *Universe) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	u.h = height
	u.reallocate()
}

// OnResize registers fn to run after every dimension change. The host uses
// this to keep the drawing surface's pixel size in sync with the grid; the
// core itself never touches a surface.
func (u *Universe) OnResize(fn func(w, h int)) {
	u.onResize = fn
}

// String renders the board as text, one row per line: ◻ for Dead, ◼ for
// Alive. Debug and test aid, not the graphical path.
func (u *Universe) String() string {
	var b strings.Builder
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			if u.cur[row*u.w+col] == Alive {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (u *Universe) reallocate() {
	u.cur = make([]Cell, u.w*u.h)
	u.nxt = make([]Cell, u.w*u.h)
	u.gen++
	if u.onResize != nil {
		u.onResize(u.w, u.h)
	}
}

func (u *Universe) fillRandom() {
	for i := range u.cur {
		if u.rng.Bool() {
			u.cur[i] = Alive
		} else {
			u.cur[i] = Dead
		}
	}
}
