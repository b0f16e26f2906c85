package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// shade lightens (d > 0) or darkens (d < 0) an opaque color.
func shade(c color.NRGBA, d int) color.NRGBA {
	ch := func(v uint8) uint8 { return uint8(max(0, min(255, int(v)+d))) }
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: 0xff}
}

// newEditorTheme derives the prompt colors from the window's clear color.
func newEditorTheme(fontFace *text.Face, base color.NRGBA) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(shade(base, -40)),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(shade(base, 60)),
				Hover:   solidNineSlice(shade(base, 90)),
				Pressed: solidNineSlice(shade(base, 30)),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}
