// Package collision builds a static physics world from a tile map and the
// per-column heights stored in its tile sheet descriptor.
package collision

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tilemapeditor/tilegrid"
)

const collisionTypeSolid cp.CollisionType = 1

type World struct {
	space *cp.Space
	boxes []cp.BB
}

// Build adds one static box per run of equal, non-zero column heights in
// every map cell. Heights are bottom-anchored: a column of height h covers
// the lowest h pixels of its cell. Coordinates are map pixels, y down.
func Build(sheet tilegrid.Sheet, grid *tilegrid.Grid, tileSize int) *World {
	w := &World{space: cp.NewSpace()}
	if grid == nil || tileSize <= 0 {
		return w
	}

	grid.Each(func(row, col, idx int) {
		heights := sheet.Tile(idx)
		if heights == nil {
			return
		}
		x0 := float64(col * tileSize)
		bottom := float64((row + 1) * tileSize)
		n := min(len(heights), tileSize)

		for c := 0; c < n; {
			h := heights[c]
			end := c + 1
			for end < n && heights[end] == h {
				end++
			}
			if h > 0 {
				w.addBox(cp.BB{
					L: x0 + float64(c),
					B: bottom - float64(h),
					R: x0 + float64(end),
					T: bottom,
				})
			}
			c = end
		}
	})
	return w
}

func (w *World) addBox(bb cp.BB) {
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
	w.boxes = append(w.boxes, bb)
}

// Solid reports whether the map pixel point lies inside a box.
func (w *World) Solid(x, y float64) bool {
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	return info.Shape != nil
}

// Boxes returns the boxes in the order they were added.
func (w *World) Boxes() []cp.BB { return w.boxes }
