// Package ui holds the clickable menu widgets of the editor screen. It
// decides what a click means; drawing is left to the window layer.
package ui

import (
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/viewport"
)

const (
	CharWidth  = 8
	LineHeight = 16
)

type Kind int

const (
	KindTextButton Kind = iota
	KindPopupMenu
)

// Action runs when a text button is clicked. It either acts on the editor
// directly and returns nil, or returns a request that needs user input.
type Action func(e *editor.Editor) editor.Request

// Widget is a text button or a popup menu. Only text buttons use Action and
// only popup menus use Items.
type Widget struct {
	Kind   Kind
	Label  string
	Rect   viewport.Rect
	Action Action
	Items  []*Widget

	active  bool
	hovered bool
}

func labelRect(label string, x, y int) viewport.Rect {
	return viewport.Rect{X: x, Y: y, Width: len(label) * CharWidth, Height: LineHeight}
}

// Button creates an active text button sized to its label.
func Button(label string, x, y int, action Action) *Widget {
	return &Widget{
		Kind:   KindTextButton,
		Label:  label,
		Rect:   labelRect(label, x, y),
		Action: action,
		active: true,
	}
}

// Popup creates a closed popup menu. Its items are hidden until the popup
// is clicked.
func Popup(label string, x, y int, items ...*Widget) *Widget {
	for _, it := range items {
		it.active = false
	}
	return &Widget{
		Kind:   KindPopupMenu,
		Label:  label,
		Rect:   labelRect(label, x, y),
		Items:  items,
		active: true,
	}
}

// Column lays out labelled actions under (x, y), one line each, for use as
// popup items.
func Column(x, y int, entries ...Entry) []*Widget {
	out := make([]*Widget, 0, len(entries))
	for i, en := range entries {
		out = append(out, Button(en.Label, x, y+i*LineHeight, en.Action))
	}
	return out
}

type Entry struct {
	Label  string
	Action Action
}

func (w *Widget) Active() bool  { return w.active }
func (w *Widget) Hovered() bool { return w.hovered }

// Open reports whether a popup is showing its items.
func (w *Widget) Open() bool {
	if w.Kind != KindPopupMenu {
		return false
	}
	for _, it := range w.Items {
		if it.active {
			return true
		}
	}
	return false
}

func (w *Widget) close() {
	for _, it := range w.Items {
		it.active = false
		it.hovered = false
	}
}

func (w *Widget) aim(x, y int) {
	switch w.Kind {
	case KindTextButton:
		if !w.active {
			return
		}
		w.hovered = w.Rect.Contains(x, y)
	case KindPopupMenu:
		w.hovered = w.Rect.Contains(x, y)
		for _, it := range w.Items {
			it.aim(x, y)
		}
	}
}

// click reports whether w consumed the click, and the request its action
// produced if any.
func (w *Widget) click(e *editor.Editor, x, y int) (editor.Request, bool) {
	switch w.Kind {
	case KindTextButton:
		if !w.active || !w.Rect.Contains(x, y) {
			return nil, false
		}
		if w.Action == nil {
			return nil, true
		}
		return w.Action(e), true
	case KindPopupMenu:
		if w.Rect.Contains(x, y) {
			open := !w.Open()
			for _, it := range w.Items {
				it.active = open
				it.hovered = false
			}
			return nil, true
		}
		for _, it := range w.Items {
			if req, ok := it.click(e, x, y); ok {
				w.close()
				return req, true
			}
		}
	}
	return nil, false
}
