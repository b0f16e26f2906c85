package ui

import "github.com/milk9111/tilemapeditor/editor"

// Screen owns the widgets shown over one editor.
type Screen struct {
	editor  *editor.Editor
	widgets []*Widget
}

func NewScreen(e *editor.Editor, widgets ...*Widget) *Screen {
	return &Screen{editor: e, widgets: widgets}
}

func (s *Screen) Add(w *Widget) { s.widgets = append(s.widgets, w) }

// Aim updates hover state for the cursor position.
func (s *Screen) Aim(x, y int) {
	for _, w := range s.widgets {
		w.aim(x, y)
	}
}

// Click dispatches a click to the first widget that takes it. The bool
// reports whether any widget did; the request is non-nil only when the
// clicked action needs input. Opening a popup closes the others.
func (s *Screen) Click(x, y int) (editor.Request, bool) {
	for _, w := range s.widgets {
		req, ok := w.click(s.editor, x, y)
		if !ok {
			continue
		}
		if w.Open() {
			for _, o := range s.widgets {
				if o != w {
					o.close()
				}
			}
		}
		return req, true
	}
	return nil, false
}

// Visible returns every widget that should be drawn, popups before their
// open items.
func (s *Screen) Visible() []*Widget {
	var out []*Widget
	for _, w := range s.widgets {
		if !w.active {
			continue
		}
		out = append(out, w)
		for _, it := range w.Items {
			if it.active {
				out = append(out, it)
			}
		}
	}
	return out
}

// Contains reports whether (x, y) is over a visible widget.
func (s *Screen) Contains(x, y int) bool {
	for _, w := range s.Visible() {
		if w.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}
