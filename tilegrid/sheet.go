package tilegrid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/tilemapeditor/canvas"
)

// Sheet is the descriptor saved next to a tile sheet bitmap. Heights holds
// one entry per tile in row-major order; each entry has one value per pixel
// column: tileSize minus the offset of the first non-black pixel from the
// top of the tile, or 0 for an all-black column.
type Sheet struct {
	TileSize int
	Heights  [][]int
}

// DescribeSheet scans buf tile by tile. Pixels past the buffer edge count
// as black.
func DescribeSheet(buf *canvas.Buffer, tileSize int) Sheet {
	s := Sheet{TileSize: tileSize}
	if tileSize <= 0 {
		return s
	}
	for y := 0; y < buf.Height; y += tileSize {
		for x := 0; x < buf.Width; x += tileSize {
			heights := make([]int, tileSize)
			for col := 0; col < tileSize; col++ {
				for row := 0; row < tileSize; row++ {
					px, py := x+col, y+row
					if buf.InBounds(px, py) && !canvas.IsBlack(buf.At(px, py)) {
						heights[col] = tileSize - row
						break
					}
				}
			}
			s.Heights = append(s.Heights, heights)
		}
	}
	return s
}

// EncodeSheet writes the tile size followed by one "<index>: v v ... "
// line per tile. Values keep their trailing space and the last line has no
// newline.
func EncodeSheet(w io.Writer, s Sheet) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(s.TileSize))
	for i, heights := range s.Heights {
		fmt.Fprintf(bw, "\n%d: ", i)
		for _, h := range heights {
			bw.WriteString(strconv.Itoa(h))
			bw.WriteByte(' ')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tilegrid: encode sheet: %w", err)
	}
	return nil
}

func DecodeSheet(r io.Reader) (Sheet, error) {
	sc := bufio.NewScanner(r)
	size, err := scanTileSize(sc)
	if err != nil {
		return Sheet{}, err
	}
	s := Sheet{TileSize: size}
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		label, rest, ok := strings.Cut(text, ":")
		if !ok {
			return Sheet{}, &ParseError{Line: line, Msg: "missing tile label"}
		}
		idx, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil || idx != len(s.Heights) {
			return Sheet{}, &ParseError{Line: line, Msg: fmt.Sprintf("unexpected tile label %q", label)}
		}
		fields := strings.Fields(rest)
		if len(fields) != size {
			return Sheet{}, &ParseError{Line: line, Msg: fmt.Sprintf("tile %d has %d columns, expected %d", idx, len(fields), size)}
		}
		heights := make([]int, size)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > size {
				return Sheet{}, &ParseError{Line: line, Msg: fmt.Sprintf("invalid column height %q", f)}
			}
			heights[i] = v
		}
		s.Heights = append(s.Heights, heights)
	}
	if err := sc.Err(); err != nil {
		return Sheet{}, fmt.Errorf("tilegrid: decode sheet: %w", err)
	}
	return s, nil
}

// Tile returns the heights of tile idx, or nil when the sheet has no such
// tile.
func (s Sheet) Tile(idx int) []int {
	if idx < 0 || idx >= len(s.Heights) {
		return nil
	}
	return s.Heights[idx]
}
