package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}

// Handle is an explicit attachment point for a rendered node. Primitives
// record their measured size into it when they render, and the page records
// where the node was placed. Composed components use it to observe the node,
// for example as a visibility target.
//
// All methods are safe on a nil handle.
type Handle struct {
	id       string
	width    int
	height   int
	x        int
	y        int
	attached bool
}

// NewHandle creates a detached handle.
func NewHandle(id string) *Handle {
	return &Handle{id: id}
}

// ID returns the identifier the handle was created with.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Measure records the size of a rendered node.
func (h *Handle) Measure(rendered string) {
	if h == nil {
		return
	}
	h.width = lipgloss.Width(rendered)
	h.height = lipgloss.Height(rendered)
	if rendered == "" {
		h.height = 0
	}
}

// Size returns the last measured width and height.
func (h *Handle) Size() (int, int) {
	if h == nil {
		return 0, 0
	}
	return h.width, h.height
}

// Attach records the node's position on the rendering surface.
func (h *Handle) Attach(x, y int) {
	if h == nil {
		return
	}
	h.x = x
	h.y = y
	h.attached = true
}

// Detach marks the node as no longer placed on a surface.
func (h *Handle) Detach() {
	if h == nil {
		return
	}
	h.attached = false
}

// Attached reports whether the node is placed on a surface.
func (h *Handle) Attached() bool {
	return h != nil && h.attached
}

// Bounds implements visibility.Target.
func (h *Handle) Bounds() (visibility.Rect, bool) {
	if h == nil || !h.attached {
		return visibility.Rect{}, false
	}
	return visibility.Rect{X: h.x, Y: h.y, Width: h.width, Height: h.height}, true
}
