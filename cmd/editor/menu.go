package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tilemapeditor/ui"
)

var (
	menuIdle  = color.RGBA{180, 180, 180, 255}
	menuHover = color.RGBA{220, 220, 220, 255}
	menuOpen  = color.RGBA{150, 170, 200, 255}
)

func drawMenu(screen *ebiten.Image, widgets []*ui.Widget, face text.Face) {
	for _, w := range widgets {
		bg := menuIdle
		switch {
		case w.Open():
			bg = menuOpen
		case w.Hovered():
			bg = menuHover
		}
		r := w.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.X+1), float64(r.Y+1))
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, w.Label, face, op)
	}
}
