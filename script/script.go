// Package script runs tengo programs that fill a tile map grid.
//
// A generator sees these globals:
//
//	rows, cols, tile_size, tiles  map and palette dimensions
//	set(row, col, idx)            store a tile index
//	get(row, col)                 read a tile index back
//	fill(idx)                     store idx in every cell
//
// plus the whole tengo standard library through import.
package script

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tilemapeditor/tilegrid"
)

// Params sizes the grid a generator fills. Tiles is the number of tiles the
// palette offers; zero means unknown.
type Params struct {
	Rows     int
	Cols     int
	TileSize int
	Tiles    int
}

// Generate runs src and returns the grid it produced. Cells the script never
// sets stay 0.
func Generate(ctx context.Context, src []byte, p Params) (*tilegrid.Grid, error) {
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, fmt.Errorf("script: invalid grid %dx%d", p.Rows, p.Cols)
	}
	grid := tilegrid.New(p.Rows, p.Cols)
	// the VM reformats errors returned by builtins, so remember ours
	var failure error
	fail := func(err error) (tengo.Object, error) {
		failure = err
		return nil, err
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	_ = s.Add("rows", p.Rows)
	_ = s.Add("cols", p.Cols)
	_ = s.Add("tile_size", p.TileSize)
	_ = s.Add("tiles", p.Tiles)
	_ = s.Add("set", &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		row, col, err := cellArgs(args[0], args[1])
		if err != nil {
			return nil, err
		}
		idx, ok := tengo.ToInt(args[2])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "idx", Expected: "int", Found: args[2].TypeName()}
		}
		if err := checkIndex(idx, p.Tiles); err != nil {
			return fail(err)
		}
		if !grid.Stamp(row, col, idx) {
			return fail(fmt.Errorf("set: cell %d,%d outside %dx%d grid", row, col, p.Rows, p.Cols))
		}
		return tengo.UndefinedValue, nil
	}})
	_ = s.Add("get", &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		row, col, err := cellArgs(args[0], args[1])
		if err != nil {
			return nil, err
		}
		if !grid.InBounds(row, col) {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(grid.At(row, col))}, nil
	}})
	_ = s.Add("fill", &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		idx, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "idx", Expected: "int", Found: args[0].TypeName()}
		}
		if err := checkIndex(idx, p.Tiles); err != nil {
			return fail(err)
		}
		grid.Each(func(row, col, _ int) { grid.Stamp(row, col, idx) })
		return tengo.UndefinedValue, nil
	}})

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		if failure != nil {
			return nil, fmt.Errorf("script: run: %w", failure)
		}
		return nil, fmt.Errorf("script: run: %w", err)
	}
	return grid, nil
}

func cellArgs(r, c tengo.Object) (int, int, error) {
	row, ok := tengo.ToInt(r)
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "row", Expected: "int", Found: r.TypeName()}
	}
	col, ok := tengo.ToInt(c)
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "col", Expected: "int", Found: c.TypeName()}
	}
	return row, col, nil
}

func checkIndex(idx, tiles int) error {
	if idx < 0 || idx > tilegrid.MaxIndex {
		return fmt.Errorf("tile %d: %w", idx, tilegrid.ErrIndexRange)
	}
	if tiles > 0 && idx >= tiles {
		return fmt.Errorf("tile %d: palette has %d tiles", idx, tiles)
	}
	return nil
}
