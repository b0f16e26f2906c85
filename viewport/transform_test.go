package viewport

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		tr   Transform
	}{
		{"identity", New(0, 0)},
		{"offset", New(320, 240)},
		{"scaled", Transform{XOffset: 12.5, YOffset: -7, ScaleX: 3, ScaleY: 3}},
		{"fractional", Transform{XOffset: 1.25, YOffset: 4.75, ScaleX: 0.6, ScaleY: 1.7}},
	}
	points := [][2]float64{{0, 0}, {5, 5}, {15.5, 3.25}, {63, 127}, {-4, 9}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := c.tr
			for _, p := range points {
				sx, sy := tr.WorldToScreen(p[0], p[1])
				wx, wy := tr.ScreenToWorld(sx, sy)
				// One screen pixel of truncation maps to 1/scale world units.
				tolX := 1/tr.ScaleX + 1e-9
				tolY := 1/tr.ScaleY + 1e-9
				if math.Abs(wx-p[0]) > tolX || math.Abs(wy-p[1]) > tolY {
					t.Fatalf("round trip of %v gave (%v, %v)", p, wx, wy)
				}
			}
		})
	}
}

func TestWorldToScreenFloors(t *testing.T) {
	tr := Transform{XOffset: 0.5, YOffset: -0.5, ScaleX: 1, ScaleY: 1}
	sx, sy := tr.WorldToScreen(0, 0)
	if sx != 0 || sy != -1 {
		t.Fatalf("expected (0,-1), got (%d,%d)", sx, sy)
	}
}

func TestPan(t *testing.T) {
	tr := Transform{XOffset: 10, YOffset: 10, ScaleX: 2, ScaleY: 4}
	tr.Pan(4, 8)
	if tr.XOffset != 8 || tr.YOffset != 8 {
		t.Fatalf("unexpected offset after pan: (%v,%v)", tr.XOffset, tr.YOffset)
	}
}

func TestZoomKeepsAnchor(t *testing.T) {
	cases := []struct {
		name   string
		delta  float64
		ax, ay int
	}{
		{"in", 5, 100, 80},
		{"out", -3, 40, 200},
		{"single_step", 1, 0, 0},
		{"clamped", -50, 321, 17},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := New(320, 240)
			bx, by := tr.ScreenToWorld(c.ax, c.ay)
			tr.Zoom(c.delta, c.ax, c.ay)
			ax, ay := tr.ScreenToWorld(c.ax, c.ay)
			if math.Abs(ax-bx) > 1e-6 || math.Abs(ay-by) > 1e-6 {
				t.Fatalf("anchor moved: before (%v,%v) after (%v,%v)", bx, by, ax, ay)
			}
			if tr.ScaleX < MinScale || tr.ScaleY < MinScale {
				t.Fatalf("scale below floor: %v %v", tr.ScaleX, tr.ScaleY)
			}
		})
	}
}

func TestZoomFloor(t *testing.T) {
	tr := New(0, 0)
	tr.Zoom(-100, 0, 0)
	if tr.ScaleX != MinScale || tr.ScaleY != MinScale {
		t.Fatalf("expected scale floor %v, got %v,%v", MinScale, tr.ScaleX, tr.ScaleY)
	}
}

func TestClampToBounds(t *testing.T) {
	bounds := Rect{X: 100, Y: 100, Width: 200, Height: 200}

	t.Run("small_content_untouched", func(t *testing.T) {
		tr := New(-500, 900)
		tr.ClampToBounds(16, 16, bounds)
		if tr.XOffset != -500 || tr.YOffset != 900 {
			t.Fatalf("small content should not move, got (%v,%v)", tr.XOffset, tr.YOffset)
		}
	})

	t.Run("left_overshoot", func(t *testing.T) {
		// 400 px wide content, slack = 400 - 100 = 300.
		tr := New(-1000, 0)
		tr.ClampToBounds(400, 10, bounds)
		box := tr.ScreenBounds(400, 10)
		if box.Left() != bounds.Left()-300 {
			t.Fatalf("expected left edge %d, got %d", bounds.Left()-300, box.Left())
		}
	})

	t.Run("right_overshoot", func(t *testing.T) {
		tr := New(1000, 0)
		tr.ClampToBounds(400, 10, bounds)
		box := tr.ScreenBounds(400, 10)
		if box.Right() != bounds.Right()+300 {
			t.Fatalf("expected right edge %d, got %d", bounds.Right()+300, box.Right())
		}
	})

	t.Run("vertical_independent", func(t *testing.T) {
		tr := New(37, -2000)
		tr.ClampToBounds(10, 400, bounds)
		if tr.XOffset != 37 {
			t.Fatalf("x offset should be untouched, got %v", tr.XOffset)
		}
		box := tr.ScreenBounds(10, 400)
		if box.Top() != bounds.Top()-300 {
			t.Fatalf("expected top edge %d, got %d", bounds.Top()-300, box.Top())
		}
	})

	t.Run("within_slack_untouched", func(t *testing.T) {
		tr := New(0, 0)
		tr.ClampToBounds(400, 400, bounds)
		if tr.XOffset != 0 || tr.YOffset != 0 {
			t.Fatalf("offset inside slack should not change, got (%v,%v)", tr.XOffset, tr.YOffset)
		}
	})
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 24, Y: 48, Width: 96, Height: 384}
	for _, p := range [][2]int{{24, 48}, {120, 432}, {60, 100}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("expected %v inside %+v", p, r)
		}
	}
	for _, p := range [][2]int{{23, 48}, {121, 100}, {60, 433}} {
		if r.Contains(p[0], p[1]) {
			t.Errorf("expected %v outside %+v", p, r)
		}
	}
}
