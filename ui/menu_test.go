package ui

import (
	"testing"

	"github.com/milk9111/tilemapeditor/editor"
)

func find(ws []*Widget, label string) *Widget {
	for _, w := range ws {
		if w.Label == label {
			return w
		}
		if it := find(w.Items, label); it != nil {
			return it
		}
	}
	return nil
}

func TestDefaultMenuRequests(t *testing.T) {
	tests := []struct {
		label string
		check func(editor.Request) bool
	}{
		{"New tile sheet", func(r editor.Request) bool { _, ok := r.(editor.NewTileSheetRequest); return ok }},
		{"New tile map", func(r editor.Request) bool { _, ok := r.(editor.NewTileMapRequest); return ok }},
		{"Save", func(r editor.Request) bool { _, ok := r.(editor.SaveRequest); return ok }},
		{"Load tile map", func(r editor.Request) bool {
			lr, ok := r.(editor.LoadRequest)
			return ok && lr.Target == editor.LoadTileMap
		}},
		{"Load palette", func(r editor.Request) bool {
			lr, ok := r.(editor.LoadRequest)
			return ok && lr.Target == editor.LoadPalette
		}},
		{"Run script", func(r editor.Request) bool { _, ok := r.(editor.ScriptRequest); return ok }},
		{"C", func(r editor.Request) bool { _, ok := r.(editor.ColorRequest); return ok }},
	}
	ws := DefaultMenu(640)
	s, _ := newScreen(t, ws...)
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			w := find(ws, tt.label)
			if w == nil {
				t.Fatalf("no widget %q", tt.label)
			}
			for _, top := range ws {
				if find(top.Items, tt.label) == w && !w.Active() {
					s.Click(top.Rect.X+1, top.Rect.Y+1)
				}
			}
			req, ok := s.Click(w.Rect.X+1, w.Rect.Y+1)
			if !ok || !tt.check(req) {
				t.Fatalf("click %q = %T, %v", tt.label, req, ok)
			}
		})
	}
}

func TestDefaultMenuToolButtons(t *testing.T) {
	ws := DefaultMenu(640)
	s, e := newScreen(t, ws...)

	p := find(ws, "P")
	if p.Rect.X != 640-2*CharWidth || p.Rect.Y != 200 {
		t.Fatalf("P at %+v", p.Rect)
	}
	if req, ok := s.Click(p.Rect.X+1, p.Rect.Y+1); !ok || req != nil {
		t.Fatalf("click P = %v, %v", req, ok)
	}
	if e.Tool() != editor.ToolPipette {
		t.Fatalf("tool = %v", e.Tool())
	}
	d := find(ws, "D")
	s.Click(d.Rect.X+1, d.Rect.Y+1)
	if e.Tool() != editor.ToolDraw {
		t.Fatalf("tool = %v", e.Tool())
	}
}

func TestDefaultMenuCollisionToggle(t *testing.T) {
	ws := DefaultMenu(640)
	s, e := newScreen(t, ws...)
	tile := find(ws, "Tile..")
	s.Click(tile.Rect.X+1, tile.Rect.Y+1)
	c := find(ws, "Collision")
	s.Click(c.Rect.X+1, c.Rect.Y+1)
	if !e.CollisionVisible() {
		t.Fatalf("collision not shown")
	}
}
