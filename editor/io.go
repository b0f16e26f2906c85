package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/collision"
	"github.com/milk9111/tilemapeditor/script"
	"github.com/milk9111/tilemapeditor/tilegrid"
)

// ErrSizeMismatch is returned when a tile map's grid does not cover its
// bitmap exactly.
var ErrSizeMismatch = errors.New("grid does not match bitmap size")

// ErrPaletteOverwrite rejects saving a tile map under the name of the tile
// sheet it draws from.
var ErrPaletteOverwrite = errors.New("name belongs to the palette tile sheet")

func (e *Editor) loadPalette(name string) (*canvas.Canvas, error) {
	r := e.layout.PaletteRect
	return e.store.LoadImage(name, float64(r.X), float64(r.Y))
}

// LoadTileSheetAsCanvas opens a saved tile sheet for painting.
func (e *Editor) LoadTileSheetAsCanvas(name string) error {
	c, err := e.store.LoadImage(name, e.layout.CanvasStartX, e.layout.CanvasStartY)
	if err != nil {
		return fmt.Errorf("editor: load tile sheet %s: %w", name, err)
	}
	size, err := e.store.TileSize(name)
	if err != nil {
		return fmt.Errorf("editor: load tile sheet %s: %w", name, err)
	}

	e.canvas = c
	e.palette = nil
	e.paletteName = ""
	e.grid = nil
	e.tileSize = size
	e.sel = Selection{}
	e.mode = ModeTileSheet
	e.invalidateCollision()
	return nil
}

// LoadTileMap opens a saved tile map. The palette is cleared; load one with
// LoadTileSheetAsPalette before stamping.
func (e *Editor) LoadTileMap(name string) error {
	c, err := e.store.LoadImage(name, e.layout.CanvasStartX, e.layout.CanvasStartY)
	if err != nil {
		return fmt.Errorf("editor: load tile map %s: %w", name, err)
	}
	size, grid, err := e.store.LoadMap(name)
	if err != nil {
		return fmt.Errorf("editor: load tile map %s: %w", name, err)
	}
	if grid.Rows() != c.Height()/size || grid.Cols() != c.Width()/size {
		return fmt.Errorf("editor: load tile map %s: %dx%d grid for %dx%d bitmap at tile size %d: %w",
			name, grid.Rows(), grid.Cols(), c.Width(), c.Height(), size, ErrSizeMismatch)
	}

	e.canvas = c
	e.palette = nil
	e.paletteName = ""
	e.grid = grid
	e.tileSize = size
	e.sel = Selection{}
	e.mode = ModeTileMap
	e.invalidateCollision()
	return nil
}

// LoadTileSheetAsPalette swaps the palette of an open tile map. Outside
// tile map mode it does nothing.
func (e *Editor) LoadTileSheetAsPalette(name string) error {
	if e.canvas == nil || e.mode != ModeTileMap {
		return nil
	}
	p, err := e.loadPalette(name)
	if err != nil {
		return fmt.Errorf("editor: load palette %s: %w", name, err)
	}
	e.palette = p
	e.paletteName = name
	e.invalidateCollision()
	return nil
}

// ReloadPalette re-reads the palette bitmap if name is the current palette,
// keeping its pan and zoom. It reports whether a reload happened.
func (e *Editor) ReloadPalette(name string) (bool, error) {
	if e.palette == nil || e.paletteName == "" || e.paletteName != name {
		return false, nil
	}
	p, err := e.loadPalette(name)
	if err != nil {
		return false, fmt.Errorf("editor: reload palette %s: %w", name, err)
	}
	*p.Transform() = *e.palette.Transform()
	e.palette = p
	e.invalidateCollision()
	return true, nil
}

// Save writes <name>.bmp and the sidecar for the current mode. A tile map
// holding an index the text format cannot store is rejected before any file
// is touched, as is a tile map saved over its own palette.
func (e *Editor) Save(name string) error {
	if e.canvas == nil {
		return nil
	}
	if e.mode == ModeTileMap && e.paletteName != "" && name == e.paletteName {
		return fmt.Errorf("editor: save %s: %w", name, ErrPaletteOverwrite)
	}

	var text bytes.Buffer
	switch e.mode {
	case ModeTileSheet:
		sheet := tilegrid.DescribeSheet(e.canvas.Buffer(), e.tileSize)
		if err := tilegrid.EncodeSheet(&text, sheet); err != nil {
			return fmt.Errorf("editor: save %s: %w", name, err)
		}
	case ModeTileMap:
		if err := tilegrid.EncodeMap(&text, e.tileSize, e.grid); err != nil {
			return fmt.Errorf("editor: save %s: %w", name, err)
		}
	}

	if err := e.store.SaveImage(name, e.canvas); err != nil {
		return fmt.Errorf("editor: save %s: %w", name, err)
	}
	err := e.store.WriteText(name, func(w io.Writer) error {
		_, err := w.Write(text.Bytes())
		return err
	})
	if err != nil {
		return fmt.Errorf("editor: save %s: %w", name, err)
	}
	return nil
}

// PaletteTiles is the number of whole tiles in the palette.
func (e *Editor) PaletteTiles() int {
	if e.palette == nil || e.tileSize <= 0 {
		return 0
	}
	return (e.palette.Width() / e.tileSize) * (e.palette.Height() / e.tileSize)
}

// ApplyScript runs a tengo generator over the current tile map and stamps
// every cell from the palette.
func (e *Editor) ApplyScript(ctx context.Context, src []byte) error {
	if e.mode != ModeTileMap || e.canvas == nil || e.palette == nil || e.grid == nil {
		return nil
	}
	grid, err := script.Generate(ctx, src, script.Params{
		Rows:     e.grid.Rows(),
		Cols:     e.grid.Cols(),
		TileSize: e.tileSize,
		Tiles:    e.PaletteTiles(),
	})
	if err != nil {
		return fmt.Errorf("editor: apply script: %w", err)
	}

	grid.Each(func(row, col, idx int) {
		e.StampCell(row, col, idx)
	})
	return nil
}

// StampCell records idx at (row, col) and copies the matching palette tile
// into the canvas cell.
func (e *Editor) StampCell(row, col, idx int) {
	if e.palette == nil || e.grid == nil || !e.grid.Stamp(row, col, idx) {
		return
	}
	ox, oy := tilegrid.TileOrigin(idx, e.palette.Width(), e.tileSize)
	src := tileRect(ox, oy, e.tileSize)
	e.canvas.BlitFrom(e.palette.Buffer(), src, col*e.tileSize, row*e.tileSize)
	e.invalidateCollision()
}

// Collision builds the collision preview of the current tile map from the
// palette's tile sheet descriptor.
func (e *Editor) Collision() (*collision.World, error) {
	if e.mode != ModeTileMap || e.grid == nil || e.paletteName == "" {
		return nil, nil
	}
	if e.world != nil {
		return e.world, nil
	}
	sheet, err := e.store.LoadSheet(e.paletteName)
	if err != nil {
		return nil, fmt.Errorf("editor: collision: %w", err)
	}
	e.world = collision.Build(sheet, e.grid, e.tileSize)
	return e.world, nil
}

// ToggleCollision switches the collision overlay and reports the new state.
func (e *Editor) ToggleCollision() bool {
	e.showCollision = !e.showCollision
	return e.showCollision
}

func (e *Editor) invalidateCollision() { e.world = nil }
