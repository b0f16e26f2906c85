package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/tilegrid"
)

func TestImageRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "images"))
	c := canvas.New(4, 2, 0, 0)
	c.PaintAt(1, 1, canvas.RGB(1, 2, 3))

	if err := s.SaveImage("grass", c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadImage("grass", 24, 48)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Width() != 4 || got.Height() != 2 {
		t.Fatalf("expected 4x2, got %dx%d", got.Width(), got.Height())
	}
	if got.Buffer().At(1, 1) != canvas.RGB(1, 2, 3) {
		t.Fatalf("pixel lost: %#x", got.Buffer().At(1, 1))
	}
}

func TestMissingFiles(t *testing.T) {
	s := New(t.TempDir())
	cases := []struct {
		name string
		call func() error
	}{
		{"image", func() error { _, err := s.LoadImage("nope", 0, 0); return err }},
		{"text", func() error { _, err := s.OpenText("nope"); return err }},
		{"tile_size", func() error { _, err := s.TileSize("nope"); return err }},
		{"map", func() error { _, _, err := s.LoadMap("nope"); return err }},
		{"sheet", func() error { _, err := s.LoadSheet("nope"); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.call()
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("ErrNotFound should match fs.ErrNotExist")
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := os.WriteFile(filepath.Join(dir, "bad.bmp"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var de *DecodeError
	if _, err := s.LoadImage("bad", 0, 0); !errors.As(err, &de) {
		t.Fatalf("expected DecodeError for image, got %v", err)
	}
	_, _, err := s.LoadMap("bad")
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError for map, got %v", err)
	}
	var pe *tilegrid.ParseError
	if !errors.As(err, &pe) || pe.Line != 1 {
		t.Fatalf("expected wrapped ParseError on line 1, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	g := tilegrid.FromRows([][]int{{1, 2}, {3, 4}})
	err := s.WriteText("level", func(w io.Writer) error {
		return tilegrid.EncodeMap(w, 16, g)
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	size, err := s.TileSize("level")
	if err != nil || size != 16 {
		t.Fatalf("expected tile size 16, got %d (%v)", size, err)
	}
	_, back, err := s.LoadMap("level")
	if err != nil || !back.Equal(g) {
		t.Fatalf("map round trip failed: %v", err)
	}
}

func TestWriteTextPropagatesError(t *testing.T) {
	s := New(t.TempDir())
	boom := fmt.Errorf("boom")
	if err := s.WriteText("x", func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestFailedWriteKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.WriteText("level", func(w io.Writer) error {
		_, err := io.WriteString(w, "16\n1 2\n")
		return err
	}); err != nil {
		t.Fatalf("write: %v", err)
	}

	boom := fmt.Errorf("boom")
	err := s.WriteText("level", func(w io.Writer) error {
		_, _ = io.WriteString(w, "16\n")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err := os.ReadFile(s.Path("level", TextExt))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "16\n1 2\n" {
		t.Fatalf("previous contents lost: %q", got)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only level.txt, found %d entries", len(entries))
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"b.bmp", "b.txt", "a.bmp", "notes.md", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := New(dir).List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []Entry{{Name: "a"}, {Name: "b", HasText: true}}
	if len(entries) != len(want) {
		t.Fatalf("expected %v, got %v", want, entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d: expected %v, got %v", i, want[i], entries[i])
		}
	}

	missing, err := New(filepath.Join(dir, "missing")).List()
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing dir should list nothing, got %v %v", missing, err)
	}
}

func TestNameOf(t *testing.T) {
	cases := map[string]string{
		"content/grass.bmp": "grass",
		"content/grass.TXT": "grass",
		"content/x.png":     "",
	}
	for in, want := range cases {
		if got := NameOf(in); got != want {
			t.Errorf("NameOf(%q): expected %q, got %q", in, want, got)
		}
	}
}
