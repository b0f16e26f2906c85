// Package viewport maps between screen pixels and canvas-local world pixels.
package viewport

import "math"

const (
	// MinScale is the hard floor applied to both axes after every zoom.
	MinScale = 0.1
	// ZoomStep is the scale change for one unit of zoom delta.
	ZoomStep = 0.1
)

// Transform holds the pan offset (in world units) and the per-axis scale.
//
//	screen = (world + offset) * scale
//	world  = screen/scale - offset
type Transform struct {
	XOffset, YOffset float64
	ScaleX, ScaleY   float64
}

// New returns a transform at scale 1 with the given starting offset.
func New(xOffset, yOffset float64) Transform {
	return Transform{XOffset: xOffset, YOffset: yOffset, ScaleX: 1, ScaleY: 1}
}

func (t *Transform) WorldToScreen(wx, wy float64) (int, int) {
	sx := math.Floor((wx + t.XOffset) * t.ScaleX)
	sy := math.Floor((wy + t.YOffset) * t.ScaleY)
	return int(sx), int(sy)
}

func (t *Transform) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := float64(sx)/t.ScaleX - t.XOffset
	wy := float64(sy)/t.ScaleY - t.YOffset
	return wx, wy
}

// Pan moves the view by a screen-space delta. Dragging right moves the
// content left, so the offset shrinks.
func (t *Transform) Pan(dx, dy float64) {
	t.XOffset -= dx / t.ScaleX
	t.YOffset -= dy / t.ScaleY
}

// Zoom changes the scale by delta*ZoomStep while keeping the world point
// under the anchor (ax, ay) fixed on screen.
func (t *Transform) Zoom(delta float64, ax, ay int) {
	beforeX, beforeY := t.ScreenToWorld(ax, ay)

	t.ScaleX = math.Max(t.ScaleX+delta*ZoomStep, MinScale)
	t.ScaleY = math.Max(t.ScaleY+delta*ZoomStep, MinScale)

	afterX, afterY := t.ScreenToWorld(ax, ay)
	t.XOffset -= beforeX - afterX
	t.YOffset -= beforeY - afterY
}

// ScreenBounds returns the screen-space box covering world [0,w]x[0,h].
func (t *Transform) ScreenBounds(w, h int) Rect {
	left, top := t.WorldToScreen(0, 0)
	right, bottom := t.WorldToScreen(float64(w), float64(h))
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// ClampToBounds keeps content of size w x h from being scrolled out of
// bounds. Each axis is handled on its own: content that fits inside the
// bounds is left alone, otherwise its screen edges may overshoot the bounds
// edges by at most max(size - boundsSize/2, 0).
func (t *Transform) ClampToBounds(w, h int, bounds Rect) {
	box := t.ScreenBounds(w, h)

	if box.Width > bounds.Width {
		slack := max(box.Width-bounds.Width/2, 0)
		if box.Left() < bounds.Left()-slack {
			t.XOffset = float64(bounds.Left()-slack) / t.ScaleX
		} else if box.Right() > bounds.Right()+slack {
			t.XOffset = float64(bounds.Right()+slack-box.Width) / t.ScaleX
		}
	}

	if box.Height > bounds.Height {
		slack := max(box.Height-bounds.Height/2, 0)
		if box.Top() < bounds.Top()-slack {
			t.YOffset = float64(bounds.Top()-slack) / t.ScaleY
		} else if box.Bottom() > bounds.Bottom()+slack {
			t.YOffset = float64(bounds.Bottom()+slack-box.Height) / t.ScaleY
		}
	}
}
