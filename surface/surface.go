// Package surface is the drawing target the editor renders into.
package surface

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Surface is implemented by anything the editor can draw on.
type Surface interface {
	// Blit draws src (or the srcRect part of it when non-nil) scaled into dst.
	Blit(src image.Image, srcRect *image.Rectangle, dst image.Rectangle)
	DrawLine(x1, y1, x2, y2 int, c color.Color)
	FillRect(r image.Rectangle, c color.Color)
}

// Raster is a software Surface backed by an RGBA image. Scaling is nearest
// neighbour so integer zoom factors give exact pixel copies.
type Raster struct {
	Img *image.RGBA
}

func NewRaster(w, h int) *Raster {
	return &Raster{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (r *Raster) Blit(src image.Image, srcRect *image.Rectangle, dst image.Rectangle) {
	sr := src.Bounds()
	if srcRect != nil {
		sr = srcRect.Intersect(sr)
	}
	if sr.Empty() || dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(r.Img, dst, src, sr, xdraw.Over, nil)
}

func (r *Raster) FillRect(rect image.Rectangle, c color.Color) {
	draw.Draw(r.Img, rect, &image.Uniform{C: c}, image.Point{}, draw.Over)
}

func (r *Raster) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	for _, p := range Line(x1, y1, x2, y2) {
		if p.In(r.Img.Rect) {
			r.Img.Set(p.X, p.Y, c)
		}
	}
}

// Line returns the Bresenham points from (x0, y0) to (x1, y1) inclusive.
func Line(x0, y0, x1, y1 int) []image.Point {
	var points []image.Point
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		points = append(points, image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
