package main

import (
	"bytes"
	"image/png"
	"log"

	"golang.design/x/clipboard"

	"github.com/milk9111/tilemapeditor/canvas"
)

func initClipboard() bool {
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		return false
	}
	return true
}

// copyCanvas puts the open canvas on the clipboard as a PNG.
func (g *Game) copyCanvas() {
	c := g.ed.Canvas()
	if !g.clipboard || c == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image()); err != nil {
		g.setStatus("Copy failed: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	g.setStatus("Copied %dx%d canvas", c.Width(), c.Height())
}

func (g *Game) copyColor() {
	if !g.clipboard {
		return
	}
	hex := canvas.Hex(g.ed.Color())
	clipboard.Write(clipboard.FmtText, []byte(hex))
	g.setStatus("Copied %s", hex)
}
