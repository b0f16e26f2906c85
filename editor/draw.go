package editor

import (
	"image"

	"github.com/milk9111/tilemapeditor/surface"
)

// Sprites are optional decoration images. PaletteFrame is drawn behind the
// palette inside PaletteBounds; Background is drawn last at the screen
// origin and is expected to be transparent where the work areas show
// through.
type Sprites struct {
	PaletteFrame image.Image
	Background   image.Image
}

func (e *Editor) SetSprites(s Sprites) { e.sprites = s }

// Draw renders back to front: canvas and its grid, the palette frame, the
// palette and its grid, the selection highlight, then the background.
func (e *Editor) Draw(target surface.Surface) {
	if e.canvas != nil {
		e.canvas.Draw(target)
		e.canvas.DrawGrid(target, e.tileSize, e.tileSize, e.layout.GridColor)
		if e.showCollision {
			e.drawCollision(target)
		}
	}
	if e.sprites.PaletteFrame != nil {
		target.Blit(e.sprites.PaletteFrame, nil, e.layout.PaletteBounds.Image())
	}
	if e.palette != nil {
		e.palette.Draw(target)
		e.palette.DrawGrid(target, e.tileSize, e.tileSize, e.layout.GridColor)
		if e.mode == ModeTileMap {
			e.drawSelection(target)
		}
	}
	if e.sprites.Background != nil {
		b := e.sprites.Background.Bounds()
		target.Blit(e.sprites.Background, nil, image.Rect(0, 0, b.Dx(), b.Dy()))
	}
}

func (e *Editor) drawSelection(target surface.Surface) {
	tr := e.palette.Transform()
	size := float64(e.tileSize)
	left, top := tr.WorldToScreen(e.sel.Row, e.sel.Col)
	right, bottom := tr.WorldToScreen(e.sel.Row+size, e.sel.Col+size)
	c := e.layout.SelectionColor

	target.DrawLine(left, top, right, top, c)
	target.DrawLine(left, top, left, bottom, c)
	target.DrawLine(left, bottom, right, bottom, c)
	target.DrawLine(right, top, right, bottom, c)
}

func (e *Editor) drawCollision(target surface.Surface) {
	world, err := e.Collision()
	if err != nil || world == nil {
		return
	}
	tr := e.canvas.Transform()
	for _, bb := range world.Boxes() {
		x0, y0 := tr.WorldToScreen(bb.L, bb.B)
		x1, y1 := tr.WorldToScreen(bb.R, bb.T)
		target.FillRect(image.Rect(x0, y0, x1, y1), e.layout.CollisionColor)
	}
}
