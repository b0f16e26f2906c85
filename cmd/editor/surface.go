package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws editor output onto the screen. Source images are
// uploaded once and reused for as long as they are drawn every frame; the
// canvas hands out a new image after each edit, so stale textures are
// released at the end of the frame that stopped using them.
type ebitenSurface struct {
	target *ebiten.Image
	cache  map[image.Image]*ebiten.Image
	used   map[image.Image]bool
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{
		cache: make(map[image.Image]*ebiten.Image),
		used:  make(map[image.Image]bool),
	}
}

func (s *ebitenSurface) Begin(target *ebiten.Image) {
	s.target = target
	clear(s.used)
}

func (s *ebitenSurface) End() {
	for src, tex := range s.cache {
		if !s.used[src] {
			tex.Deallocate()
			delete(s.cache, src)
		}
	}
	s.target = nil
}

func (s *ebitenSurface) texture(src image.Image) *ebiten.Image {
	s.used[src] = true
	if tex, ok := s.cache[src]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(src)
	s.cache[src] = tex
	return tex
}

func (s *ebitenSurface) Blit(src image.Image, srcRect *image.Rectangle, dst image.Rectangle) {
	if s.target == nil || src == nil || dst.Empty() {
		return
	}
	tex := s.texture(src)
	if srcRect != nil {
		sub, ok := tex.SubImage(*srcRect).(*ebiten.Image)
		if !ok {
			return
		}
		tex = sub
	}
	b := tex.Bounds()
	if b.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(b.Dx()), float64(dst.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.target.DrawImage(tex, op)
}

func (s *ebitenSurface) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	if s.target == nil {
		return
	}
	// pixel centres keep one-pixel lines crisp
	vector.StrokeLine(s.target, float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, 1, c, false)
}

func (s *ebitenSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.target == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(s.target, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
