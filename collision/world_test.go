package collision

import (
	"testing"

	"github.com/milk9111/tilemapeditor/tilegrid"
)

func TestBuildMergesColumns(t *testing.T) {
	sheet := tilegrid.Sheet{TileSize: 4, Heights: [][]int{
		{0, 0, 0, 0},
		{4, 4, 2, 2},
	}}
	grid := tilegrid.FromRows([][]int{{0, 1}})

	w := Build(sheet, grid, 4)
	boxes := w.Boxes()
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d: %v", len(boxes), boxes)
	}
	if b := boxes[0]; b.L != 4 || b.R != 6 || b.B != 0 || b.T != 4 {
		t.Fatalf("unexpected full-height box %+v", b)
	}
	if b := boxes[1]; b.L != 6 || b.R != 8 || b.B != 2 || b.T != 4 {
		t.Fatalf("unexpected half-height box %+v", b)
	}
}

func TestSolid(t *testing.T) {
	sheet := tilegrid.Sheet{TileSize: 4, Heights: [][]int{
		{0, 0, 0, 0},
		{4, 4, 2, 2},
	}}
	grid := tilegrid.FromRows([][]int{{0, 1}, {1, 0}})
	w := Build(sheet, grid, 4)

	cases := []struct {
		name  string
		x, y  float64
		solid bool
	}{
		{"empty_tile", 1.5, 1.5, false},
		{"full_column", 4.5, 0.5, true},
		{"above_short_column", 7.5, 0.5, false},
		{"short_column", 7.5, 3.5, true},
		{"second_row", 0.5, 5.5, true},
		{"outside_map", 20, 20, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := w.Solid(c.x, c.y); got != c.solid {
				t.Fatalf("Solid(%v,%v): expected %v, got %v", c.x, c.y, c.solid, got)
			}
		})
	}
}

func TestBuildUnknownTiles(t *testing.T) {
	sheet := tilegrid.Sheet{TileSize: 2, Heights: [][]int{{2, 2}}}
	grid := tilegrid.FromRows([][]int{{5}})
	if n := len(Build(sheet, grid, 2).Boxes()); n != 0 {
		t.Fatalf("tiles missing from the sheet should add nothing, got %d boxes", n)
	}
	if n := len(Build(sheet, nil, 2).Boxes()); n != 0 {
		t.Fatalf("nil grid should add nothing")
	}
}
