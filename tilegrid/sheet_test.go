package tilegrid

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/tilemapeditor/canvas"
)

func TestDescribeSheet(t *testing.T) {
	// two 2x2 tiles side by side
	buf := canvas.NewBuffer(4, 2)
	buf.Fill(canvas.Black)
	buf.Set(0, 0, canvas.DefaultColor) // tile 0, column 0, top row
	buf.Set(1, 1, canvas.RGB(0, 0, 1)) // tile 0, column 1, bottom row
	buf.Set(3, 1, 0x00FF0000)          // tile 1, column 1, alpha ignored

	s := DescribeSheet(buf, 2)
	if s.TileSize != 2 || len(s.Heights) != 2 {
		t.Fatalf("unexpected sheet %+v", s)
	}
	want := [][]int{{2, 1}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if s.Heights[i][j] != want[i][j] {
				t.Fatalf("tile %d column %d: expected %d, got %d", i, j, want[i][j], s.Heights[i][j])
			}
		}
	}
}

func TestDescribeSheetRowMajor(t *testing.T) {
	buf := canvas.NewBuffer(2, 2)
	buf.Fill(canvas.Black)
	buf.Set(0, 1, canvas.DefaultColor)
	s := DescribeSheet(buf, 1)
	want := []int{0, 0, 1, 0}
	for i, w := range want {
		if s.Heights[i][0] != w {
			t.Fatalf("tile %d: expected %d, got %d", i, w, s.Heights[i][0])
		}
	}
}

func TestEncodeSheetFormat(t *testing.T) {
	s := Sheet{TileSize: 2, Heights: [][]int{{2, 1}, {0, 0}}}
	var buf bytes.Buffer
	if err := EncodeSheet(&buf, s); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := "2\n0: 2 1 \n1: 0 0 "; buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}

	back, err := DecodeSheet(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.TileSize != 2 || len(back.Heights) != 2 || back.Heights[0][0] != 2 || back.Heights[0][1] != 1 {
		t.Fatalf("unexpected decode %+v", back)
	}
	if back.Tile(5) != nil {
		t.Fatalf("missing tile should be nil")
	}
}

func TestDecodeSheetErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no_label", "2\n2 1\n"},
		{"wrong_label", "2\n1: 2 1\n"},
		{"short", "2\n0: 2\n"},
		{"too_tall", "2\n0: 3 1\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeSheet(strings.NewReader(c.in))
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Line != 2 {
				t.Fatalf("expected ParseError on line 2, got %v", err)
			}
		})
	}
}
