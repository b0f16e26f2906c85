package ui

import (
	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/input"
)

// Shortcut is a keyboard command resolved from one frame of input.
type Shortcut int

const (
	ShortcutNone Shortcut = iota
	ShortcutSave
	ShortcutCopyCanvas
	ShortcutCopyColor
	ShortcutOpenSheet
	ShortcutOpenMap
	ShortcutToggleCollision
	ShortcutExtendX
	ShortcutExtendY
	ShortcutTruncateX
	ShortcutTruncateY
)

// ShortcutKeys maps the letter and arrow keys the shortcuts use onto the
// host's key codes.
type ShortcutKeys struct {
	C, O, S               input.Key
	Left, Right, Up, Down input.Key
}

// ShortcutFor resolves the shortcut pressed this frame. Modifier
// combinations win over bare keys, so Ctrl+C never toggles collision.
func ShortcutFor(in *input.State, k ShortcutKeys) Shortcut {
	ctrl := in.HasModifiers(input.ModCtrl)
	shift := in.HasModifiers(input.ModShift)

	switch {
	case ctrl && in.IsKeyPressed(k.S):
		return ShortcutSave
	case ctrl && shift && in.IsKeyPressed(k.C):
		return ShortcutCopyColor
	case ctrl && in.IsKeyPressed(k.C):
		return ShortcutCopyCanvas
	case ctrl && shift && in.IsKeyPressed(k.O):
		return ShortcutOpenMap
	case ctrl && in.IsKeyPressed(k.O):
		return ShortcutOpenSheet
	case ctrl:
		return ShortcutNone
	case in.IsKeyPressed(k.C):
		return ShortcutToggleCollision
	case shift && in.IsKeyPressed(k.Right):
		return ShortcutExtendX
	case shift && in.IsKeyPressed(k.Down):
		return ShortcutExtendY
	case shift && in.IsKeyPressed(k.Left):
		return ShortcutTruncateX
	case shift && in.IsKeyPressed(k.Up):
		return ShortcutTruncateY
	}
	return ShortcutNone
}

// ApplyShortcut runs the shortcuts that only touch the editor. The ones
// that need the host (files, clipboard) are left to the caller.
func ApplyShortcut(e *editor.Editor, s Shortcut) {
	switch s {
	case ShortcutToggleCollision:
		e.ToggleCollision()
	case ShortcutExtendX:
		e.ExtendCanvas(canvas.AxisX)
	case ShortcutExtendY:
		e.ExtendCanvas(canvas.AxisY)
	case ShortcutTruncateX:
		e.TruncateCanvas(canvas.AxisX)
	case ShortcutTruncateY:
		e.TruncateCanvas(canvas.AxisY)
	}
}
