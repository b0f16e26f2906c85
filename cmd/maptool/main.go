// Command maptool works on tile sheets and tile maps without opening a
// window: it renders maps to PNG, runs generator scripts and prints file
// summaries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/image/colornames"

	"github.com/milk9111/tilemapeditor/assets"
	"github.com/milk9111/tilemapeditor/collision"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/storage"
	"github.com/milk9111/tilemapeditor/surface"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("maptool", flag.ContinueOnError)
	dir := flags.String("dir", "content/images", "Directory holding bitmaps and their text files")
	list := flags.Bool("list", false, "List stored entities")
	info := flags.String("info", "", "Print a summary of the named tile sheet or tile map")
	render := flags.String("render", "", "Tile map to render as PNG")
	out := flags.String("out", "", "Output path for -render (default <name>.png)")
	scale := flags.Int("scale", 1, "Integer scale for -render")
	sheet := flags.String("sheet", "", "Tile sheet used by -script, and for the -render collision overlay")
	scriptPath := flags.String("script", "", "Generator script, or the name of a bundled one ("+strings.Join(assets.Scripts(), ", ")+")")
	cols := flags.Int("cols", 1, "Tile map width in tiles for -script")
	rows := flags.Int("rows", 1, "Tile map height in tiles for -script")
	save := flags.String("save", "", "Name to save the generated tile map under")
	timeout := flags.Duration("timeout", editor.ScriptTimeout, "Time limit for -script")
	if err := flags.Parse(args); err != nil {
		return err
	}

	store := storage.New(*dir)
	switch {
	case *list:
		return listEntities(store, stdout)
	case *info != "":
		return describe(store, *info, stdout)
	case *render != "":
		path := *out
		if path == "" {
			path = *render + ".png"
		}
		return renderMap(store, *render, *sheet, *scale, path)
	case *scriptPath != "":
		if *sheet == "" || *save == "" {
			return errors.New("maptool: -script needs -sheet and -save")
		}
		return generate(store, *scriptPath, *sheet, *cols, *rows, *save, *timeout)
	default:
		flags.Usage()
		return errors.New("maptool: nothing to do")
	}
}

func listEntities(store *storage.Store, w io.Writer) error {
	entries, err := store.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		suffix := ""
		if !e.HasText {
			suffix = " (no text file)"
		}
		fmt.Fprintf(w, "%s%s\n", e.Name, suffix)
	}
	return nil
}

func describe(store *storage.Store, name string, w io.Writer) error {
	ts, grid, err := store.LoadMap(name)
	if err == nil {
		used := map[int]bool{}
		grid.Each(func(_, _, idx int) { used[idx] = true })
		fmt.Fprintf(w, "%s: tile map %dx%d, tile size %d, %d distinct tiles\n", name, grid.Cols(), grid.Rows(), ts, len(used))
		return nil
	}
	var derr *storage.DecodeError
	if !errors.As(err, &derr) {
		return err
	}
	sh, serr := store.LoadSheet(name)
	if serr != nil {
		return fmt.Errorf("maptool: %s is neither a tile map nor a tile sheet: %w", name, err)
	}
	fmt.Fprintf(w, "%s: tile sheet, tile size %d, %d tiles\n", name, sh.TileSize, len(sh.Heights))
	return nil
}

func renderMap(store *storage.Store, name, sheetName string, scale int, path string) error {
	if scale < 1 {
		return fmt.Errorf("maptool: scale %d", scale)
	}
	ts, grid, err := store.LoadMap(name)
	if err != nil {
		return err
	}
	c, err := store.LoadImage(name, 0, 0)
	if err != nil {
		return err
	}
	tr := c.Transform()
	tr.ScaleX, tr.ScaleY = float64(scale), float64(scale)

	r := surface.NewRaster(c.Width()*scale, c.Height()*scale)
	c.Draw(r)
	if sheetName != "" {
		sh, err := store.LoadSheet(sheetName)
		if err != nil {
			return err
		}
		for _, bb := range collision.Build(sh, grid, ts).Boxes() {
			x0, y0 := tr.WorldToScreen(bb.L, bb.B)
			x1, y1 := tr.WorldToScreen(bb.R, bb.T)
			r.FillRect(image.Rect(x0, y0, x1, y1), editor.DefaultLayout().CollisionColor)
		}
	}
	c.DrawGrid(r, ts, ts, colornames.Gray)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("maptool: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, r.Img); err != nil {
		return fmt.Errorf("maptool: encode %s: %w", path, err)
	}
	log.Printf("Rendered %s (%dx%d) to %s", name, r.Img.Bounds().Dx(), r.Img.Bounds().Dy(), path)
	return nil
}

// loadScript reads a script file, falling back to the bundled script of
// that name.
func loadScript(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if b, aerr := assets.Script(path); aerr == nil {
			return b, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("maptool: read %s: %w", path, err)
	}
	return src, nil
}

func generate(store *storage.Store, scriptPath, sheet string, cols, rows int, name string, timeout time.Duration) error {
	src, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	ed := editor.New(store, editor.DefaultLayout())
	if err := ed.CreateTileMap(sheet, cols, rows); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := ed.ApplyScript(ctx, src); err != nil {
		return err
	}
	if err := ed.Save(name); err != nil {
		return err
	}
	log.Printf("Generated %s (%dx%d tiles from %s)", name, cols, rows, sheet)
	return nil
}
