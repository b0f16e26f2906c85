package editor

import "github.com/milk9111/tilemapeditor/input"

// Tool decides what the left button does over a canvas or palette.
type Tool int

const (
	ToolDraw Tool = iota
	ToolPipette
)

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "Draw"
	case ToolPipette:
		return "Pipette"
	default:
		return "Unknown"
	}
}

// Update runs one frame of pointer interaction. (mx, my) is the cursor now
// and (prevX, prevY) where it was at the start of the frame. The middle
// button pans, the left button applies the current tool and the wheel
// zooms.
func (e *Editor) Update(in *input.State, mx, my, prevX, prevY int) {
	if in.IsButtonPressed(input.ButtonMiddle) {
		e.StartMove(mx, my)
	}
	if in.IsButtonHeld(input.ButtonMiddle) {
		// content follows the cursor
		e.Move(prevX-mx, prevY-my)
	}
	if in.IsButtonReleased(input.ButtonMiddle) {
		e.StopMove()
	}

	if in.IsButtonHeld(input.ButtonLeft) {
		switch e.tool {
		case ToolDraw:
			e.PutPixel(mx, my)
		case ToolPipette:
			e.SetColorAtPoint(mx, my)
		}
	}

	if d := in.ScrollDelta(); d != 0 {
		e.Scale(d, mx, my)
	}
}
