package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilemapeditor/input"
	"github.com/milk9111/tilemapeditor/ui"
)

var watchedKeys = []ebiten.Key{
	ebiten.KeyC,
	ebiten.KeyO,
	ebiten.KeyS,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
}

var watchedButtons = map[ebiten.MouseButton]input.Button{
	ebiten.MouseButtonLeft:   input.ButtonLeft,
	ebiten.MouseButtonRight:  input.ButtonRight,
	ebiten.MouseButtonMiddle: input.ButtonMiddle,
}

func key(k ebiten.Key) input.Key { return input.Key(k) }

var shortcutKeys = ui.ShortcutKeys{
	C:     key(ebiten.KeyC),
	O:     key(ebiten.KeyO),
	S:     key(ebiten.KeyS),
	Left:  key(ebiten.KeyArrowLeft),
	Right: key(ebiten.KeyArrowRight),
	Up:    key(ebiten.KeyArrowUp),
	Down:  key(ebiten.KeyArrowDown),
}

// modifiers samples Ctrl and Shift as levels. ebiten's virtual modifier
// keys never report inpututil edges.
func modifiers() input.Modifier {
	var m input.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= input.ModShift
	}
	return m
}

// pollInput copies this frame's ebiten edges into in.
func pollInput(in *input.State) {
	in.BeginFrame()
	in.SetModifiers(modifiers())
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.KeyDown(key(k))
		}
		if inpututil.IsKeyJustReleased(k) {
			in.KeyUp(key(k))
		}
	}
	for mb, b := range watchedButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			in.ButtonDown(b)
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			in.ButtonUp(b)
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		in.Scroll(wy)
	}
}
