package render

import (
	"testing"

	"golife/internal/core"
	"golife/internal/life"
)

func TestSurfaceSizeMatchesCellGridFormula(t *testing.T) {
	cases := []struct {
		size   core.Size
		pw, ph int
	}{
		{core.Size{W: 64, H: 48}, (CellSize+1)*64 + 1, (CellSize+1)*48 + 1},
		{core.Size{W: 1, H: 1}, CellSize + 2, CellSize + 2},
		{core.Size{W: 0, H: 0}, 1, 1},
	}
	for _, c := range cases {
		pw, ph := SurfaceSize(c.size)
		if pw != c.pw || ph != c.ph {
			t.Fatalf("SurfaceSize(%dx%d) = %dx%d, expected %dx%d", c.size.W, c.size.H, pw, ph, c.pw, c.ph)
		}
	}
}

func TestCellOriginSkipsGridLines(t *testing.T) {
	if x, y := CellOrigin(0, 0); x != 1 || y != 1 {
		t.Fatalf("CellOrigin(0,0) = (%d,%d), expected (1,1)", x, y)
	}
	if x, y := CellOrigin(2, 3); x != 3*(CellSize+1)+1 || y != 2*(CellSize+1)+1 {
		t.Fatalf("CellOrigin(2,3) = (%d,%d)", x, y)
	}
}

func TestCellAtInvertsCellOrigin(t *testing.T) {
	size := core.Size{W: 10, H: 8}
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			x, y := CellOrigin(row, col)
			// Probe the center of the square, not just the corner.
			p, ok := CellAt(x+CellSize/2, y+CellSize/2, size)
			if !ok || p.Row != row || p.Col != col {
				t.Fatalf("CellAt center of (%d,%d) = %+v ok=%v", row, col, p, ok)
			}
		}
	}
}

func TestCellAtClampsOuterEdge(t *testing.T) {
	size := core.Size{W: 3, H: 3}
	pw, ph := SurfaceSize(size)

	p, ok := CellAt(pw-1, ph-1, size)
	if !ok || p != (life.Point{Row: 2, Col: 2}) {
		t.Fatalf("bottom-right edge mapped to %+v ok=%v", p, ok)
	}

	if _, ok := CellAt(pw, 0, size); ok {
		t.Fatal("pixel beyond the surface must not map to a cell")
	}
	if _, ok := CellAt(-1, 0, size); ok {
		t.Fatal("negative pixel must not map to a cell")
	}
	if _, ok := CellAt(0, 0, core.Size{}); ok {
		t.Fatal("empty board must not map any pixel")
	}
}
