// Package storage reads and writes the <name>.bmp / <name>.txt pairs that
// make up a saved tile sheet or tile map.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/tilegrid"
)

const (
	ImageExt = ".bmp"
	TextExt  = ".txt"
)

// ErrNotFound is returned when a named file does not exist. It matches
// fs.ErrNotExist as well.
var ErrNotFound = notFound{}

type notFound struct{}

func (notFound) Error() string        { return "file not found" }
func (notFound) Is(target error) bool { return target == fs.ErrNotExist }

// DecodeError reports a file that exists but could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("storage: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store resolves entity names to files inside Dir.
type Store struct {
	Dir string
}

func New(dir string) *Store { return &Store{Dir: dir} }

// Path returns the file for name with the given extension.
func (s *Store) Path(name, ext string) string {
	return filepath.Join(s.Dir, name+ext)
}

func (s *Store) open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("storage: open %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	return f, nil
}

// LoadImage decodes <name>.bmp into a canvas placed at (startX, startY).
func (s *Store) LoadImage(name string, startX, startY float64) (*canvas.Canvas, error) {
	path := s.Path(name, ImageExt)
	f, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := canvas.Decode(f, startX, startY)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return c, nil
}

// SaveImage writes c to <name>.bmp, creating Dir if needed.
func (s *Store) SaveImage(name string, c *canvas.Canvas) error {
	return s.write(s.Path(name, ImageExt), c.Encode)
}

// OpenText opens <name>.txt for reading.
func (s *Store) OpenText(name string) (io.ReadCloser, error) {
	return s.open(s.Path(name, TextExt))
}

// WriteText creates <name>.txt and hands it to fn.
func (s *Store) WriteText(name string, fn func(io.Writer) error) error {
	return s.write(s.Path(name, TextExt), fn)
}

// write fills a temp file beside path and renames it over path, so a
// failed encode leaves the previous file untouched.
func (s *Store) write(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", path, err)
	}
	tmp := f.Name()
	fail := func(err error) error {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0644); err != nil {
		return fail(fmt.Errorf("storage: chmod %s: %w", tmp, err))
	}
	if err := fn(f); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: rename %s: %w", path, err)
	}
	return nil
}

// TileSize reads the first line of <name>.txt.
func (s *Store) TileSize(name string) (int, error) {
	rc, err := s.OpenText(name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	size, err := tilegrid.ReadTileSize(rc)
	if err != nil {
		return 0, &DecodeError{Path: s.Path(name, TextExt), Err: err}
	}
	return size, nil
}

// LoadMap decodes <name>.txt as a tile map sidecar.
func (s *Store) LoadMap(name string) (int, *tilegrid.Grid, error) {
	rc, err := s.OpenText(name)
	if err != nil {
		return 0, nil, err
	}
	defer rc.Close()

	size, grid, err := tilegrid.DecodeMap(rc)
	if err != nil {
		return 0, nil, &DecodeError{Path: s.Path(name, TextExt), Err: err}
	}
	return size, grid, nil
}

// LoadSheet decodes <name>.txt as a tile sheet descriptor.
func (s *Store) LoadSheet(name string) (tilegrid.Sheet, error) {
	rc, err := s.OpenText(name)
	if err != nil {
		return tilegrid.Sheet{}, err
	}
	defer rc.Close()

	sheet, err := tilegrid.DecodeSheet(rc)
	if err != nil {
		return tilegrid.Sheet{}, &DecodeError{Path: s.Path(name, TextExt), Err: err}
	}
	return sheet, nil
}

// Entry is a saved name found in the store.
type Entry struct {
	Name    string
	HasText bool
}

// List returns every name that has a bitmap, sorted.
func (s *Store) List() ([]Entry, error) {
	des, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: list %s: %w", s.Dir, err)
	}

	texts := make(map[string]bool)
	var names []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		base := strings.TrimSuffix(de.Name(), filepath.Ext(de.Name()))
		switch ext {
		case ImageExt:
			names = append(names, base)
		case TextExt:
			texts[base] = true
		}
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n, HasText: texts[n]})
	}
	return entries, nil
}

// NameOf maps a path inside the store to its entity name, or "" if the
// file is not part of a pair.
func NameOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ImageExt && ext != TextExt {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
