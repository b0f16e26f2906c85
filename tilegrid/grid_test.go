package tilegrid

import (
	"testing"

	"github.com/milk9111/tilemapeditor/canvas"
)

func TestNewGridIsZero(t *testing.T) {
	g := New(2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("expected 2x3, got %dx%d", g.Rows(), g.Cols())
	}
	g.Each(func(row, col, idx int) {
		if idx != 0 {
			t.Fatalf("cell %d,%d = %d, expected 0", row, col, idx)
		}
	})
}

func TestStampStaysInside(t *testing.T) {
	g := New(1, 1)
	if !g.Stamp(0, 0, 7) || g.At(0, 0) != 7 {
		t.Fatalf("expected stamp at 0,0")
	}
	if g.Stamp(1, 0, 3) || g.Stamp(0, -1, 3) {
		t.Fatalf("stamp outside the grid should be refused")
	}
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Fatalf("grid grew on stamp")
	}
}

func TestGrowShrink(t *testing.T) {
	cases := []struct {
		name               string
		ops                func(g *Grid)
		wantRows, wantCols int
	}{
		{"grow_x", func(g *Grid) { g.Grow(canvas.AxisX, 0) }, 2, 4},
		{"grow_y", func(g *Grid) { g.Grow(canvas.AxisY, 3) }, 3, 3},
		{"shrink_x", func(g *Grid) { g.Shrink(canvas.AxisX) }, 2, 2},
		{"shrink_y", func(g *Grid) { g.Shrink(canvas.AxisY) }, 1, 3},
		{"grow_then_shrink", func(g *Grid) {
			g.Grow(canvas.AxisX, 0)
			g.Grow(canvas.AxisY, 4)
			g.Shrink(canvas.AxisX)
		}, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(2, 3)
			g.Stamp(0, 0, 5)
			c.ops(g)
			if g.Rows() != c.wantRows || g.Cols() != c.wantCols {
				t.Fatalf("expected %dx%d, got %dx%d", c.wantRows, c.wantCols, g.Rows(), g.Cols())
			}
			for r := 0; r < g.Rows(); r++ {
				if len(g.cells[r]) != c.wantCols {
					t.Fatalf("row %d has %d cells", r, len(g.cells[r]))
				}
			}
			if g.At(0, 0) != 5 {
				t.Fatalf("existing cell lost")
			}
		})
	}
}

// The selection stores world pixels, so the stored formula yields the
// row-major tile number for a snapped cell. Fed tile coordinates it divides
// by the tile size a second time; both results are kept as they are.
func TestTileIndexFormula(t *testing.T) {
	cases := []struct {
		name     string
		row, col float64
		want     int
	}{
		{"origin", 0, 0, 0},
		{"pixels_32_16", 32, 16, 6},
		{"tile_units_2_1", 2, 1, (1*(64/16) + 2) / 16},
		{"last_tile", 48, 48, 15},
		{"unsnapped_truncates", 33.9, 16.2, (16*4 + 33) / 16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TileIndex(c.row, c.col, 64, 16); got != c.want {
				t.Fatalf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestTileOriginInvertsTileIndex(t *testing.T) {
	for y := 0; y < 64; y += 16 {
		for x := 0; x < 64; x += 16 {
			idx := TileIndex(float64(x), float64(y), 64, 16)
			ox, oy := TileOrigin(idx, 64, 16)
			if ox != x || oy != y {
				t.Fatalf("tile at (%d,%d) -> %d -> (%d,%d)", x, y, idx, ox, oy)
			}
		}
	}
}
