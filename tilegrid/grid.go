// Package tilegrid holds the tile-index grid of a tile map and the text
// formats stored next to tile sheet and tile map bitmaps.
package tilegrid

import "github.com/milk9111/tilemapeditor/canvas"

// Grid maps row, col to a tile index. Every row has the same length.
type Grid struct {
	cells [][]int
}

func New(rows, cols int) *Grid {
	g := &Grid{cells: make([][]int, rows)}
	for r := range g.cells {
		g.cells[r] = make([]int, cols)
	}
	return g
}

func (g *Grid) Rows() int { return len(g.cells) }

func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < len(g.cells[row])
}

func (g *Grid) At(row, col int) int {
	return g.cells[row][col]
}

// Stamp records idx at (row, col). The grid never grows here; a cell
// outside the grid is ignored and reported as false.
func (g *Grid) Stamp(row, col, idx int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[row][col] = idx
	return true
}

// Grow appends a zero row of count cells (AxisY) or a zero column to every
// row (AxisX, count is ignored).
func (g *Grid) Grow(axis canvas.Axis, count int) {
	switch axis {
	case canvas.AxisX:
		for r := range g.cells {
			g.cells[r] = append(g.cells[r], 0)
		}
	case canvas.AxisY:
		g.cells = append(g.cells, make([]int, count))
	}
}

// Shrink drops the last row or column.
func (g *Grid) Shrink(axis canvas.Axis) {
	switch axis {
	case canvas.AxisX:
		for r := range g.cells {
			if n := len(g.cells[r]); n > 0 {
				g.cells[r] = g.cells[r][:n-1]
			}
		}
	case canvas.AxisY:
		if n := len(g.cells); n > 0 {
			g.cells = g.cells[:n-1]
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col, idx int)) {
	for r, row := range g.cells {
		for c, idx := range row {
			fn(r, c, idx)
		}
	}
}

func (g *Grid) Equal(other *Grid) bool {
	if g.Rows() != other.Rows() {
		return false
	}
	for r := range g.cells {
		if len(g.cells[r]) != len(other.cells[r]) {
			return false
		}
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) Clone() *Grid {
	out := &Grid{cells: make([][]int, len(g.cells))}
	for r, row := range g.cells {
		out.cells[r] = append([]int(nil), row...)
	}
	return out
}

// FromRows builds a grid from explicit cells. Rows are copied.
func FromRows(rows [][]int) *Grid {
	g := &Grid{cells: make([][]int, len(rows))}
	for r, row := range rows {
		g.cells[r] = append([]int(nil), row...)
	}
	return g
}

// TileIndex turns a palette selection into the index stored in the grid.
// row and col are the snapped world x and y of the selected palette cell.
// The arithmetic is kept exactly as saved maps expect it:
//
//	(int(col)*(paletteWidth/tileSize) + int(row)) / tileSize
//
// With pixel coordinates that are tile multiples this is the row-major tile
// number; fed tile coordinates instead it divides by tileSize twice.
func TileIndex(row, col float64, paletteWidth, tileSize int) int {
	if tileSize <= 0 {
		return 0
	}
	return (int(col)*(paletteWidth/tileSize) + int(row)) / tileSize
}

// TileOrigin returns the palette pixel position of the tile that TileIndex
// numbers idx.
func TileOrigin(idx, paletteWidth, tileSize int) (x, y int) {
	if tileSize <= 0 {
		return 0, 0
	}
	perRow := paletteWidth / tileSize
	if perRow <= 0 {
		return 0, 0
	}
	return (idx % perRow) * tileSize, (idx / perRow) * tileSize
}
