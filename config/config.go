// Package config loads the editor's window and layout settings from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/viewport"
)

const DefaultPath = "editor.yaml"

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Config struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	ContentDir   string `yaml:"content_dir"`

	// Optional bitmaps in ContentDir drawn around the palette and over
	// the whole screen.
	PaletteFrame string `yaml:"palette_frame"`
	Background   string `yaml:"background"`

	CanvasStart   Point         `yaml:"canvas_start"`
	CanvasBounds  viewport.Rect `yaml:"canvas_bounds"`
	PaletteBounds viewport.Rect `yaml:"palette_bounds"`
	PaletteRect   viewport.Rect `yaml:"palette_rect"`
	PaletteZoom   float64       `yaml:"palette_zoom"`

	ClearColor     Color `yaml:"clear_color"`
	GridColor      Color `yaml:"grid_color"`
	SelectionColor Color `yaml:"selection_color"`
	CollisionColor Color `yaml:"collision_color"`
	PaintColor     Color `yaml:"paint_color"`
}

func Default() Config {
	l := editor.DefaultLayout()
	return Config{
		Title:          "Tile Editor",
		ScreenWidth:    640,
		ScreenHeight:   480,
		ContentDir:     "content/images",
		CanvasStart:    Point{X: l.CanvasStartX, Y: l.CanvasStartY},
		CanvasBounds:   l.CanvasBounds,
		PaletteBounds:  l.PaletteBounds,
		PaletteRect:    l.PaletteRect,
		PaletteZoom:    l.PaletteZoom,
		ClearColor:     Color(canvas.RGB(51, 102, 153)),
		GridColor:      colorOf(l.GridColor),
		SelectionColor: colorOf(l.SelectionColor),
		CollisionColor: colorOf(l.CollisionColor),
		PaintColor:     Color(l.PaintColor),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults, so keys left out keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return Config{}, fmt.Errorf("screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	return cfg, nil
}

func (c Config) Layout() editor.Layout {
	return editor.Layout{
		CanvasStartX:   c.CanvasStart.X,
		CanvasStartY:   c.CanvasStart.Y,
		CanvasBounds:   c.CanvasBounds,
		PaletteBounds:  c.PaletteBounds,
		PaletteRect:    c.PaletteRect,
		PaletteZoom:    c.PaletteZoom,
		GridColor:      c.GridColor.NRGBA(),
		SelectionColor: c.SelectionColor.NRGBA(),
		CollisionColor: c.CollisionColor.NRGBA(),
		PaintColor:     uint32(c.PaintColor),
	}
}

// Color is a packed 0xAARRGGBB color written as "#rrggbb" or "#rrggbbaa".
type Color uint32

func colorOf(c color.Color) Color {
	return Color(canvas.FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA)))
}

func (c Color) NRGBA() color.NRGBA { return canvas.ToNRGBA(uint32(c)) }

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	v, err := canvas.ParseHex(value.Value)
	if err != nil {
		return err
	}
	*c = Color(v)
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return canvas.Hex(uint32(c)), nil
}
