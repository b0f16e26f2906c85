package canvas

import (
	"image"
	"image/color"
)

// DefaultColor fills freshly allocated and newly grown pixels (opaque white).
const DefaultColor uint32 = 0xFFFFFFFF

// Black is the "empty" color of the tile sheet descriptor.
const Black uint32 = 0xFF000000

// Buffer is a row-major array of packed 0xAARRGGBB pixels.
// len(Pix) == Width*Height always holds.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewBuffer(w, h int) *Buffer {
	b := &Buffer{Width: w, Height: h, Pix: make([]uint32, w*h)}
	b.Fill(DefaultColor)
	return b
}

// Stride is the row pitch in bytes.
func (b *Buffer) Stride() int { return b.Width * 4 }

func (b *Buffer) Fill(c uint32) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

func (b *Buffer) At(x, y int) uint32 {
	return b.Pix[y*b.Width+x]
}

func (b *Buffer) Set(x, y int, c uint32) {
	b.Pix[y*b.Width+x] = c
}

// Resize reallocates the buffer, keeping the overlapping top-left region and
// filling anything new with DefaultColor.
func (b *Buffer) Resize(w, h int) {
	pix := make([]uint32, w*h)
	for i := range pix {
		pix[i] = DefaultColor
	}
	cw := min(w, b.Width)
	ch := min(h, b.Height)
	for y := 0; y < ch; y++ {
		copy(pix[y*w:y*w+cw], b.Pix[y*b.Width:y*b.Width+cw])
	}
	b.Width, b.Height, b.Pix = w, h, pix
}

// Blit copies the src region r into b with its top-left at (dx, dy).
// Pixels falling outside either buffer are skipped.
func (b *Buffer) Blit(src *Buffer, r image.Rectangle, dx, dy int) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !src.InBounds(x, y) {
				continue
			}
			tx := dx + x - r.Min.X
			ty := dy + y - r.Min.Y
			if !b.InBounds(tx, ty) {
				continue
			}
			b.Set(tx, ty, src.At(x, y))
		}
	}
}

func (b *Buffer) Clone() *Buffer {
	pix := make([]uint32, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Image returns a non-premultiplied copy of the buffer.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetNRGBA(x, y, ToNRGBA(b.At(x, y)))
		}
	}
	return img
}

// BufferFromImage copies any image into a new Buffer.
func BufferFromImage(img image.Image) *Buffer {
	r := img.Bounds()
	b := &Buffer{Width: r.Dx(), Height: r.Dy(), Pix: make([]uint32, r.Dx()*r.Dy())}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			b.Set(x, y, FromNRGBA(c))
		}
	}
	return b
}

func ToNRGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

func FromNRGBA(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// IsBlack compares the color channels only, alpha is ignored.
func IsBlack(c uint32) bool { return c&0x00FFFFFF == 0 }

// RGB packs an opaque color.
func RGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
