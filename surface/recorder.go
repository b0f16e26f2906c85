package surface

import (
	"image"
	"image/color"
)

type OpKind int

const (
	OpBlit OpKind = iota
	OpLine
	OpFill
)

// Op is one recorded draw call.
type Op struct {
	Kind    OpKind
	Src     image.Image
	SrcRect *image.Rectangle
	Dst     image.Rectangle
	X1, Y1  int
	X2, Y2  int
	Color   color.Color
}

// Recorder is a Surface that only remembers what was drawn, in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Blit(src image.Image, srcRect *image.Rectangle, dst image.Rectangle) {
	var sr *image.Rectangle
	if srcRect != nil {
		cp := *srcRect
		sr = &cp
	}
	r.Ops = append(r.Ops, Op{Kind: OpBlit, Src: src, SrcRect: sr, Dst: dst})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Dst: rect, Color: c})
}

// Lines returns only the recorded line calls.
func (r *Recorder) Lines() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpLine {
			out = append(out, op)
		}
	}
	return out
}
