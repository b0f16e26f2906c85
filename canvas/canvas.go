// Package canvas owns an editable pixel buffer together with the viewport
// that places it on screen.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/milk9111/tilemapeditor/surface"
	"github.com/milk9111/tilemapeditor/viewport"
)

// Axis selects the horizontal or vertical dimension for resizes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

type Canvas struct {
	buf    *Buffer
	tr     viewport.Transform
	moving bool

	// img caches buf as an image. It is dropped on every write so each
	// revision of the pixels gets a distinct *image.NRGBA.
	img *image.NRGBA
}

// New creates a blank canvas filled with DefaultColor, placed at the given
// start offset with scale 1.
func New(w, h int, startX, startY float64) *Canvas {
	return FromBuffer(NewBuffer(w, h), startX, startY)
}

func FromBuffer(buf *Buffer, startX, startY float64) *Canvas {
	return &Canvas{buf: buf, tr: viewport.New(startX, startY)}
}

// Decode reads a BMP or PNG image into a new canvas of the same size.
func Decode(r io.Reader, startX, startY float64) (*Canvas, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode: %w", err)
	}
	return FromBuffer(BufferFromImage(img), startX, startY), nil
}

// Encode writes the pixels as an uncompressed BMP.
func (c *Canvas) Encode(w io.Writer) error {
	if err := bmp.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("canvas: encode: %w", err)
	}
	return nil
}

func (c *Canvas) Width() int  { return c.buf.Width }
func (c *Canvas) Height() int { return c.buf.Height }

// Buffer exposes the pixels for read access. Writers must go through the
// canvas so the cached image stays in sync.
func (c *Canvas) Buffer() *Buffer { return c.buf }

func (c *Canvas) Transform() *viewport.Transform { return &c.tr }

// Cell converts a screen point into the buffer cell under it. Coordinates
// truncate toward zero, so a point just left of or above the origin still
// lands on column or row 0.
func (c *Canvas) Cell(sx, sy int) (int, int, bool) {
	wx, wy := c.tr.ScreenToWorld(sx, sy)
	x, y := int(wx), int(wy)
	if x > -1 && x < c.buf.Width && y > -1 && y < c.buf.Height {
		return x, y, true
	}
	return 0, 0, false
}

// PaintAt writes col into the cell under the screen point. It reports
// whether a pixel actually changed.
func (c *Canvas) PaintAt(sx, sy int, col uint32) bool {
	x, y, ok := c.Cell(sx, sy)
	if !ok || c.buf.At(x, y) == col {
		return false
	}
	c.buf.Set(x, y, col)
	c.img = nil
	return true
}

func (c *Canvas) SampleAt(sx, sy int) (uint32, bool) {
	x, y, ok := c.Cell(sx, sy)
	if !ok {
		return 0, false
	}
	return c.buf.At(x, y), true
}

// BlitFrom copies the r region of src into the canvas with its top-left at
// world (dx, dy).
func (c *Canvas) BlitFrom(src *Buffer, r image.Rectangle, dx, dy int) {
	c.buf.Blit(src, r, dx, dy)
	c.img = nil
}

// ResizeAxis grows (deltaTiles > 0) or shrinks (deltaTiles < 0) the canvas
// along axis by deltaTiles*tileSize pixels. A resize that would leave less
// than one tile along the axis is refused and reported as false.
func (c *Canvas) ResizeAxis(axis Axis, deltaTiles, tileSize int) bool {
	if deltaTiles == 0 || tileSize <= 0 {
		return false
	}
	w, h := c.buf.Width, c.buf.Height
	switch axis {
	case AxisX:
		w += deltaTiles * tileSize
		if w < tileSize {
			return false
		}
	case AxisY:
		h += deltaTiles * tileSize
		if h < tileSize {
			return false
		}
	default:
		return false
	}
	c.buf.Resize(w, h)
	c.img = nil
	return true
}

func (c *Canvas) StartPan()      { c.moving = true }
func (c *Canvas) EndPan()        { c.moving = false }
func (c *Canvas) IsMoving() bool { return c.moving }

// PanBy moves the view by a screen delta while a pan is in progress.
func (c *Canvas) PanBy(dx, dy int) {
	if !c.moving {
		return
	}
	c.tr.Pan(float64(dx), float64(dy))
}

func (c *Canvas) ZoomAt(delta float64, ax, ay int) {
	c.tr.Zoom(delta, ax, ay)
}

// Clamp keeps the canvas from being scrolled out of bounds.
func (c *Canvas) Clamp(bounds viewport.Rect) {
	c.tr.ClampToBounds(c.buf.Width, c.buf.Height, bounds)
}

// Bounds is the screen-space box the canvas currently covers.
func (c *Canvas) Bounds() viewport.Rect {
	return c.tr.ScreenBounds(c.buf.Width, c.buf.Height)
}

// Image returns the pixels as an image. The same pointer is returned until
// the canvas is written to again.
func (c *Canvas) Image() *image.NRGBA {
	if c.img == nil {
		c.img = c.buf.Image()
	}
	return c.img
}

func (c *Canvas) Draw(target surface.Surface) {
	target.Blit(c.Image(), nil, c.Bounds().Image())
}

// DrawGrid draws a line on every cellW/cellH world boundary, edges included.
func (c *Canvas) DrawGrid(target surface.Surface, cellW, cellH int, col color.Color) {
	if cellW <= 0 || cellH <= 0 {
		return
	}
	left, top := c.tr.WorldToScreen(0, 0)
	right, bottom := c.tr.WorldToScreen(float64(c.buf.Width), float64(c.buf.Height))

	for x := 0; x <= c.buf.Width; x += cellW {
		sx, _ := c.tr.WorldToScreen(float64(x), 0)
		target.DrawLine(sx, top, sx, bottom, col)
	}
	for y := 0; y <= c.buf.Height; y += cellH {
		_, sy := c.tr.WorldToScreen(0, float64(y))
		target.DrawLine(left, sy, right, sy, col)
	}
}
