package components

import (
	"strings"
)

// Divider renders a horizontal rule across the available width.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with a light rule.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context. Without an
// explicit or contextual width it falls back to 40 cells.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.InnerWidth()
	}
	if width <= 0 {
		width = 40
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Neutral.Base)
	return d.measured(style.Render(strings.Repeat(d.char, width)))
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
