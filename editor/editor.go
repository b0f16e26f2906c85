// Package editor ties a canvas, an optional palette and a tile grid
// together and routes pointer input to them depending on the editing mode.
package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/collision"
	"github.com/milk9111/tilemapeditor/storage"
	"github.com/milk9111/tilemapeditor/tilegrid"
	"github.com/milk9111/tilemapeditor/viewport"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeTileSheet
	ModeTileMap
)

func (m Mode) String() string {
	switch m {
	case ModeTileSheet:
		return "tile sheet"
	case ModeTileMap:
		return "tile map"
	default:
		return "none"
	}
}

// Layout places the canvas and palette on screen. PaletteRect and
// PaletteZoom describe the scratch palette created while authoring a tile
// sheet; PaletteZoom is in wheel steps.
type Layout struct {
	CanvasStartX   float64
	CanvasStartY   float64
	CanvasBounds   viewport.Rect
	PaletteBounds  viewport.Rect
	PaletteRect    viewport.Rect
	PaletteZoom    float64
	GridColor      color.Color
	SelectionColor color.Color
	CollisionColor color.Color
	PaintColor     uint32
}

func DefaultLayout() Layout {
	return Layout{
		CanvasStartX:   320,
		CanvasStartY:   240,
		CanvasBounds:   viewport.Rect{X: 144, Y: 40, Width: 477, Height: 401},
		PaletteBounds:  viewport.Rect{X: 24, Y: 48, Width: 96, Height: 384},
		PaletteRect:    viewport.Rect{X: 24, Y: 48, Width: 16, Height: 64},
		PaletteZoom:    5,
		GridColor:      colornames.Gray,
		SelectionColor: colornames.Red,
		CollisionColor: color.NRGBA{G: 0xc0, B: 0x40, A: 0x80},
		PaintColor:     canvas.Black,
	}
}

// Selection is the snapped world position of the chosen palette tile. Row
// holds the x coordinate and Col the y coordinate.
type Selection struct {
	Row, Col float64
}

type Editor struct {
	store   *storage.Store
	layout  Layout
	sprites Sprites

	mode     Mode
	canvas   *canvas.Canvas
	palette  *canvas.Canvas
	grid     *tilegrid.Grid
	tileSize int
	sel      Selection

	paletteName string
	color       uint32
	tool        Tool

	showCollision bool
	world         *collision.World
}

func New(store *storage.Store, layout Layout) *Editor {
	return &Editor{
		store:    store,
		layout:   layout,
		tileSize: 1,
		color:    layout.PaintColor,
	}
}

func (e *Editor) Mode() Mode              { return e.mode }
func (e *Editor) TileSize() int           { return e.tileSize }
func (e *Editor) Canvas() *canvas.Canvas  { return e.canvas }
func (e *Editor) Palette() *canvas.Canvas { return e.palette }
func (e *Editor) PaletteName() string     { return e.paletteName }
func (e *Editor) Grid() *tilegrid.Grid    { return e.grid }
func (e *Editor) Selection() Selection    { return e.sel }
func (e *Editor) Layout() Layout          { return e.layout }
func (e *Editor) Store() *storage.Store   { return e.store }
func (e *Editor) Color() uint32           { return e.color }
func (e *Editor) SetColor(c uint32)       { e.color = c }
func (e *Editor) Tool() Tool              { return e.tool }
func (e *Editor) SetTool(t Tool)          { e.tool = t }
func (e *Editor) CollisionVisible() bool  { return e.showCollision }

// CreateTileSheet starts a blank size x size tile sheet.
func (e *Editor) CreateTileSheet(size int) error {
	if size <= 0 {
		return fmt.Errorf("editor: invalid tile size %d", size)
	}
	e.canvas = canvas.New(size, size, e.layout.CanvasStartX, e.layout.CanvasStartY)
	e.palette = nil
	e.paletteName = ""
	e.grid = nil
	e.tileSize = size
	e.sel = Selection{}
	e.mode = ModeTileSheet
	e.invalidateCollision()
	return nil
}

// CreateTileMap starts a blank xCount x yCount map using the named tile
// sheet as palette. Nothing changes unless the sheet loads.
func (e *Editor) CreateTileMap(sheet string, xCount, yCount int) error {
	if xCount <= 0 || yCount <= 0 {
		return fmt.Errorf("editor: invalid map size %dx%d", xCount, yCount)
	}
	size, err := e.store.TileSize(sheet)
	if err != nil {
		return fmt.Errorf("editor: create tile map: %w", err)
	}
	palette, err := e.loadPalette(sheet)
	if err != nil {
		return fmt.Errorf("editor: create tile map: %w", err)
	}

	e.canvas = canvas.New(size*xCount, size*yCount, e.layout.CanvasStartX, e.layout.CanvasStartY)
	e.palette = palette
	e.paletteName = sheet
	e.grid = tilegrid.New(yCount, xCount)
	e.tileSize = size
	e.sel = Selection{}
	e.mode = ModeTileMap
	e.invalidateCollision()
	return nil
}

// CreatePalette adds a small scratch palette next to a tile sheet.
func (e *Editor) CreatePalette() {
	if e.mode != ModeTileSheet {
		return
	}
	r := e.layout.PaletteRect
	p := canvas.New(r.Width, r.Height, float64(r.X), float64(r.Y))
	p.ZoomAt(e.layout.PaletteZoom, r.X, r.Y)
	e.palette = p
	e.paletteName = ""
}

// ExtendCanvas grows the canvas by one tile along axis. In tile map mode
// the grid grows with it.
func (e *Editor) ExtendCanvas(axis canvas.Axis) {
	if e.canvas == nil {
		return
	}
	if !e.canvas.ResizeAxis(axis, 1, e.tileSize) {
		return
	}
	e.canvas.Clamp(e.layout.CanvasBounds)
	if e.mode == ModeTileMap && e.grid != nil {
		e.grid.Grow(axis, e.canvas.Width()/e.tileSize)
		e.invalidateCollision()
	}
}

// TruncateCanvas shrinks the canvas by one tile along axis. A canvas that
// is one tile wide (or tall) is left alone.
func (e *Editor) TruncateCanvas(axis canvas.Axis) {
	if e.canvas == nil {
		return
	}
	size := e.canvas.Width()
	if axis == canvas.AxisY {
		size = e.canvas.Height()
	}
	if size == e.tileSize {
		return
	}
	if !e.canvas.ResizeAxis(axis, -1, e.tileSize) {
		return
	}
	e.canvas.Clamp(e.layout.CanvasBounds)
	if e.mode == ModeTileMap && e.grid != nil {
		e.grid.Shrink(axis)
		e.invalidateCollision()
	}
}

// PutPixel applies the primary action at a screen point: painting in tile
// sheet mode, stamping or picking a tile in tile map mode.
func (e *Editor) PutPixel(sx, sy int) {
	if e.canvas != nil && e.layout.CanvasBounds.Contains(sx, sy) {
		switch e.mode {
		case ModeTileSheet:
			e.canvas.PaintAt(sx, sy, e.color)
		case ModeTileMap:
			e.stamp(sx, sy)
		}
	}
	if e.palette != nil && e.layout.PaletteBounds.Contains(sx, sy) {
		switch e.mode {
		case ModeTileSheet:
			e.palette.PaintAt(sx, sy, e.color)
		case ModeTileMap:
			e.selectTile(sx, sy)
		}
	}
}

func (e *Editor) stamp(sx, sy int) {
	if e.palette == nil || e.grid == nil {
		return
	}
	if _, _, ok := e.canvas.Cell(sx, sy); !ok {
		return
	}
	wx, wy := e.canvas.Transform().ScreenToWorld(sx, sy)
	x := int(snap(wx, e.tileSize))
	y := int(snap(wy, e.tileSize))

	idx := TileIndexOf(e.sel, e.palette.Width(), e.tileSize)
	e.grid.Stamp(y/e.tileSize, x/e.tileSize, idx)

	src := tileRect(int(e.sel.Row), int(e.sel.Col), e.tileSize)
	e.canvas.BlitFrom(e.palette.Buffer(), src, x, y)
	e.invalidateCollision()
}

func (e *Editor) selectTile(sx, sy int) {
	if _, _, ok := e.palette.Cell(sx, sy); !ok {
		return
	}
	wx, wy := e.palette.Transform().ScreenToWorld(sx, sy)
	e.sel = Selection{Row: snap(wx, e.tileSize), Col: snap(wy, e.tileSize)}
}

// TileIndexOf is the grid value a stamp with selection s records.
func TileIndexOf(s Selection, paletteWidth, tileSize int) int {
	return tilegrid.TileIndex(s.Row, s.Col, paletteWidth, tileSize)
}

func tileRect(x, y, size int) image.Rectangle {
	return image.Rect(x, y, x+size, y+size)
}

// snap floors v and rounds it down to a multiple of size.
func snap(v float64, size int) float64 {
	f := math.Floor(v)
	return f - math.Mod(f, float64(size))
}

// ColorAtPoint samples the canvas, then the palette.
func (e *Editor) ColorAtPoint(sx, sy int) (uint32, bool) {
	if e.canvas != nil {
		if c, ok := e.canvas.SampleAt(sx, sy); ok {
			return c, true
		}
	}
	if e.palette != nil {
		if c, ok := e.palette.SampleAt(sx, sy); ok {
			return c, true
		}
	}
	return 0, false
}

// SetColorAtPoint is the pipette.
func (e *Editor) SetColorAtPoint(sx, sy int) {
	if c, ok := e.ColorAtPoint(sx, sy); ok {
		e.color = c
	}
}

// StartMove begins panning whichever target lies under the point.
func (e *Editor) StartMove(sx, sy int) {
	if e.canvas != nil && e.layout.CanvasBounds.Contains(sx, sy) {
		e.canvas.StartPan()
	}
	if e.palette != nil && e.layout.PaletteBounds.Contains(sx, sy) {
		e.palette.StartPan()
	}
}

// Move pans every target that is currently being moved.
func (e *Editor) Move(dx, dy int) {
	if e.canvas != nil && e.canvas.IsMoving() {
		e.canvas.PanBy(dx, dy)
		e.canvas.Clamp(e.layout.CanvasBounds)
	}
	if e.palette != nil && e.palette.IsMoving() {
		e.palette.PanBy(dx, dy)
		e.palette.Clamp(e.layout.PaletteBounds)
	}
}

func (e *Editor) StopMove() {
	if e.canvas != nil {
		e.canvas.EndPan()
	}
	if e.palette != nil {
		e.palette.EndPan()
	}
}

// Scale zooms the target under the point by delta wheel steps.
func (e *Editor) Scale(delta float64, sx, sy int) {
	if e.canvas != nil && e.layout.CanvasBounds.Contains(sx, sy) {
		e.canvas.ZoomAt(delta, sx, sy)
		e.canvas.Clamp(e.layout.CanvasBounds)
	}
	if e.palette != nil && e.layout.PaletteBounds.Contains(sx, sy) {
		e.palette.ZoomAt(delta, sx, sy)
		e.palette.Clamp(e.layout.PaletteBounds)
	}
}
