package life

// Cell is the state of a single grid position. It is a plain value: copy,
// compare and store it freely.
type Cell uint8

const (
	// Dead is the inactive cell state.
	Dead Cell = 0
	// Alive is the active cell state.
	Alive Cell = 1
)

// IsAlive reports whether the cell is in the Alive state.
func (c Cell) IsAlive() bool { return c == Alive }

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Point addresses a single cell by row and column.
type Point struct {
	Row int
	Col int
}
