package ui

import (
	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/editor"
)

func request(r editor.Request) Action {
	return func(*editor.Editor) editor.Request { return r }
}

func do(fn func(e *editor.Editor)) Action {
	return func(e *editor.Editor) editor.Request {
		fn(e)
		return nil
	}
}

// DefaultMenu builds the editor's menu bar and tool buttons for a screen
// of the given width.
func DefaultMenu(screenWidth int) []*Widget {
	file := Popup("File..", 0, 0, Column(0, LineHeight,
		Entry{"New tile sheet", request(editor.NewTileSheetRequest{})},
		Entry{"New tile map", request(editor.NewTileMapRequest{})},
		Entry{"Load tile sheet", request(editor.LoadRequest{Target: editor.LoadTileSheet})},
		Entry{"Load tile map", request(editor.LoadRequest{Target: editor.LoadTileMap})},
		Entry{"Save", request(editor.SaveRequest{})},
	)...)

	tile := Popup("Tile..", 64, 0, Column(64, LineHeight,
		Entry{"New palette", do((*editor.Editor).CreatePalette)},
		Entry{"Load palette", request(editor.LoadRequest{Target: editor.LoadPalette})},
		Entry{"Run script", request(editor.ScriptRequest{})},
		Entry{"Collision", do(func(e *editor.Editor) { e.ToggleCollision() })},
	)...)

	resize := Popup("Size..", 128, 0, Column(128, LineHeight,
		Entry{"Extend X", do(func(e *editor.Editor) { e.ExtendCanvas(canvas.AxisX) })},
		Entry{"Extend Y", do(func(e *editor.Editor) { e.ExtendCanvas(canvas.AxisY) })},
		Entry{"Truncate X", do(func(e *editor.Editor) { e.TruncateCanvas(canvas.AxisX) })},
		Entry{"Truncate Y", do(func(e *editor.Editor) { e.TruncateCanvas(canvas.AxisY) })},
	)...)

	x := screenWidth - 2*CharWidth
	return []*Widget{
		file,
		tile,
		resize,
		Button("C", x, 160, request(editor.ColorRequest{})),
		Button("D", x, 180, do(func(e *editor.Editor) { e.SetTool(editor.ToolDraw) })),
		Button("P", x, 200, do(func(e *editor.Editor) { e.SetTool(editor.ToolPipette) })),
	}
}
