package tilegrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxIndex is the largest tile index the map format can store.
const MaxIndex = 9

// EncodeMap writes tileSize on the first line followed by one line of
// single-digit indices per grid row. Nothing is written if any index is
// outside 0..MaxIndex.
func EncodeMap(w io.Writer, tileSize int, g *Grid) error {
	var encodeErr error
	g.Each(func(row, col, idx int) {
		if encodeErr == nil && (idx < 0 || idx > MaxIndex) {
			encodeErr = fmt.Errorf("tilegrid: encode cell %d,%d = %d: %w", row, col, idx, ErrIndexRange)
		}
	})
	if encodeErr != nil {
		return encodeErr
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", tileSize)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < len(g.cells[r]); c++ {
			bw.WriteByte(byte('0' + g.cells[r][c]))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tilegrid: encode: %w", err)
	}
	return nil
}

// DecodeMap parses the map format. Blank lines and spaces are skipped.
func DecodeMap(r io.Reader) (int, *Grid, error) {
	sc := bufio.NewScanner(r)
	tileSize, err := scanTileSize(sc)
	if err != nil {
		return 0, nil, err
	}

	var rows [][]int
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for _, ch := range text {
			if ch == ' ' {
				continue
			}
			if ch < '0' || ch > '9' {
				return 0, nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid tile index %q", ch)}
			}
			row = append(row, int(ch-'0'))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return 0, nil, &ParseError{Line: line, Msg: fmt.Sprintf("row has %d cells, expected %d", len(row), len(rows[0]))}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("tilegrid: decode: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil, &ParseError{Line: line, Msg: "no grid rows"}
	}
	return tileSize, &Grid{cells: rows}, nil
}

// ReadTileSize reads only the first line of a tile sheet or tile map
// sidecar.
func ReadTileSize(r io.Reader) (int, error) {
	return scanTileSize(bufio.NewScanner(r))
}

func scanTileSize(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("tilegrid: read tile size: %w", err)
		}
		return 0, &ParseError{Line: 1, Msg: "missing tile size"}
	}
	text := strings.TrimSpace(sc.Text())
	size, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Line: 1, Msg: fmt.Sprintf("tile size %q is not a number", text)}
	}
	if size <= 0 {
		return 0, &ParseError{Line: 1, Msg: fmt.Sprintf("tile size %d must be positive", size)}
	}
	return size, nil
}
