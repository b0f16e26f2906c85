package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/milk9111/tilemapeditor/canvas"
)

// Request is an action that needs a line of text from the user before it
// can run. The UI shows Prompt, collects the answer however it likes and
// hands it to Resolve.
type Request interface {
	Prompt() string
	Resolve(e *Editor, answer string) error
}

// ErrEmptyAnswer is returned for a blank answer.
var ErrEmptyAnswer = errors.New("empty answer")

type NewTileSheetRequest struct{}

func (NewTileSheetRequest) Prompt() string { return "Tile size" }

func (NewTileSheetRequest) Resolve(e *Editor, answer string) error {
	var size int
	if err := scan(answer, &size); err != nil {
		return fmt.Errorf("editor: new tile sheet: %w", err)
	}
	return e.CreateTileSheet(size)
}

type NewTileMapRequest struct{}

func (NewTileMapRequest) Prompt() string { return "Tile sheet, width and height in tiles" }

func (NewTileMapRequest) Resolve(e *Editor, answer string) error {
	var (
		sheet  string
		xCount int
		yCount int
	)
	if err := scan(answer, &sheet, &xCount, &yCount); err != nil {
		return fmt.Errorf("editor: new tile map: %w", err)
	}
	return e.CreateTileMap(sheet, xCount, yCount)
}

type SaveRequest struct{}

func (SaveRequest) Prompt() string { return "File name" }

func (SaveRequest) Resolve(e *Editor, answer string) error {
	var name string
	if err := scan(answer, &name); err != nil {
		return fmt.Errorf("editor: save: %w", err)
	}
	return e.Save(name)
}

// LoadTarget says what a loaded file becomes.
type LoadTarget int

const (
	LoadTileSheet LoadTarget = iota
	LoadTileMap
	LoadPalette
)

type LoadRequest struct {
	Target LoadTarget
}

func (r LoadRequest) Prompt() string {
	switch r.Target {
	case LoadTileMap:
		return "Tile map to load"
	case LoadPalette:
		return "Tile sheet to use as palette"
	default:
		return "Tile sheet to load"
	}
}

func (r LoadRequest) Resolve(e *Editor, answer string) error {
	var name string
	if err := scan(answer, &name); err != nil {
		return fmt.Errorf("editor: load: %w", err)
	}
	switch r.Target {
	case LoadTileMap:
		return e.LoadTileMap(name)
	case LoadPalette:
		return e.LoadTileSheetAsPalette(name)
	default:
		return e.LoadTileSheetAsCanvas(name)
	}
}

type ColorRequest struct{}

func (ColorRequest) Prompt() string { return "Color (r g b or #rrggbb)" }

func (ColorRequest) Resolve(e *Editor, answer string) error {
	c, err := ParseColor(answer)
	if err != nil {
		return fmt.Errorf("editor: color: %w", err)
	}
	e.SetColor(c)
	return nil
}

// ParseColor accepts three 0-255 components or a hex color.
func ParseColor(answer string) (uint32, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, ErrEmptyAnswer
	}
	if len(strings.Fields(answer)) == 1 {
		return canvas.ParseHex(answer)
	}
	var r, g, b int
	if err := scan(answer, &r, &g, &b); err != nil {
		return 0, err
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("component %d out of range 0..255", v)
		}
	}
	return canvas.RGB(uint8(r), uint8(g), uint8(b)), nil
}

// ScriptTimeout bounds a generator run started from the UI.
const ScriptTimeout = 5 * time.Second

// ScriptRequest runs a generator script file over the open tile map.
type ScriptRequest struct{}

func (ScriptRequest) Prompt() string { return "Generator script" }

func (ScriptRequest) Resolve(e *Editor, answer string) error {
	var path string
	if err := scan(answer, &path); err != nil {
		return fmt.Errorf("editor: script: %w", err)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("editor: script: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), ScriptTimeout)
	defer cancel()
	return e.ApplyScript(ctx, src)
}

// scan reads space separated values into dst and rejects trailing input.
func scan(answer string, dst ...any) error {
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}
	fields := strings.Fields(answer)
	if len(fields) != len(dst) {
		return fmt.Errorf("expected %d values, got %d", len(dst), len(fields))
	}
	if _, err := fmt.Sscan(answer, dst...); err != nil {
		return err
	}
	return nil
}
