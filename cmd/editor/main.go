package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilemapeditor/assets"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/storage"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML file with window and layout settings")
	dir := flag.String("dir", "", "Directory holding bitmaps and their text files (overrides content_dir)")
	sheetName := flag.String("sheet", "", "Tile sheet to open for editing")
	mapName := flag.String("map", "", "Tile map to open")
	paletteName := flag.String("palette", "", "Tile sheet to use as the palette of -map")
	initConfig := flag.Bool("init-config", false, "Write the sample settings to -config and exit")
	flag.Parse()

	if *initConfig {
		if err := writeExampleConfig(*configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote %s", *configPath)
		return
	}

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dir != "" {
		cfg.ContentDir = *dir
	}

	store := storage.New(cfg.ContentDir)
	ed := editor.New(store, cfg.Layout())
	ed.SetSprites(loadSprites(store, cfg))

	name := ""
	switch {
	case *mapName != "":
		if err := ed.LoadTileMap(*mapName); err != nil {
			log.Fatalf("Failed to load tile map %s: %v", *mapName, err)
		}
		name = *mapName
		if *paletteName != "" {
			if err := ed.LoadTileSheetAsPalette(*paletteName); err != nil {
				log.Printf("Failed to load palette %s: %v", *paletteName, err)
			}
		}
	case *sheetName != "":
		if err := ed.LoadTileSheetAsCanvas(*sheetName); err != nil {
			log.Fatalf("Failed to load tile sheet %s: %v", *sheetName, err)
		}
		name = *sheetName
	}

	game := newGame(cfg, ed)
	game.name = name
	defer game.Close()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// writeExampleConfig refuses to overwrite an existing file.
func writeExampleConfig(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(assets.ExampleConfig()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadSprites(store *storage.Store, cfg config.Config) editor.Sprites {
	var s editor.Sprites
	if cfg.PaletteFrame != "" {
		if c, err := store.LoadImage(cfg.PaletteFrame, 0, 0); err != nil {
			log.Printf("Failed to load palette frame: %v", err)
		} else {
			s.PaletteFrame = c.Image()
		}
	}
	if cfg.Background != "" {
		if c, err := store.LoadImage(cfg.Background, 0, 0); err != nil {
			log.Printf("Failed to load background: %v", err)
		} else {
			s.Background = c.Image()
		}
	}
	return s
}
