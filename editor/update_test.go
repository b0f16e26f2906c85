package editor

import (
	"testing"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/input"
)

func TestUpdatePanFollowsCursor(t *testing.T) {
	e, _ := newTestEditor(t)
	_ = e.CreateTileSheet(16)
	in := input.New()

	in.BeginFrame()
	in.ButtonDown(input.ButtonMiddle)
	e.Update(in, 300, 200, 300, 200)
	if !e.Canvas().IsMoving() {
		t.Fatalf("expected pan to start")
	}

	in.BeginFrame()
	e.Update(in, 310, 205, 300, 200)
	b := e.Canvas().Bounds()
	if b.X != 330 || b.Y != 245 {
		t.Fatalf("expected canvas at (330,245), got (%d,%d)", b.X, b.Y)
	}

	in.BeginFrame()
	in.ButtonUp(input.ButtonMiddle)
	e.Update(in, 310, 205, 310, 205)
	if e.Canvas().IsMoving() {
		t.Fatalf("expected pan to stop")
	}
}

func TestUpdateTools(t *testing.T) {
	e, _ := newTestEditor(t)
	_ = e.CreateTileSheet(16)
	in := input.New()
	in.BeginFrame()
	in.ButtonDown(input.ButtonLeft)

	e.SetColor(canvas.RGB(9, 9, 9))
	e.Update(in, 321, 241, 321, 241)
	if got, _ := e.ColorAtPoint(321, 241); got != canvas.RGB(9, 9, 9) {
		t.Fatalf("draw tool did not paint")
	}

	e.SetTool(ToolPipette)
	e.SetColor(canvas.Black)
	in.BeginFrame()
	e.Update(in, 321, 241, 321, 241)
	if e.Color() != canvas.RGB(9, 9, 9) {
		t.Fatalf("pipette did not pick the color")
	}
	if ToolPipette.String() != "Pipette" {
		t.Fatalf("unexpected tool name")
	}
}

func TestUpdateWheelZoomsUnderCursor(t *testing.T) {
	e, _ := newTestEditor(t)
	_ = e.CreateTileSheet(16)
	in := input.New()
	in.BeginFrame()
	in.Scroll(1)

	wx, wy := e.Canvas().Transform().ScreenToWorld(328, 248)
	e.Update(in, 328, 248, 328, 248)
	if s := e.Canvas().Transform().ScaleX; s < 1.09 || s > 1.11 {
		t.Fatalf("expected scale 1.1, got %v", s)
	}
	ax, ay := e.Canvas().Transform().ScreenToWorld(328, 248)
	if d := ax - wx; d > 1e-9 || d < -1e-9 {
		t.Fatalf("anchor moved in x by %v", d)
	}
	if d := ay - wy; d > 1e-9 || d < -1e-9 {
		t.Fatalf("anchor moved in y by %v", d)
	}
}
