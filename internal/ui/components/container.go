package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Container is the box behind Card and Panel: an optional border, padding
// and a column of children. It fills the width it is given.
type Container struct {
	BaseComponent
	body     *Stack
	border   lipgloss.Border
	borderFG PaletteSlot
	padding  Spacing
	width    int
}

// NewContainer creates an unbordered box around children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		body:          VStack(children...),
	}
}

// View renders the box without layout context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box. With a known width it fills that width
// and children get what is left inside the frame.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderFG != nil {
			style = style.BorderForeground(c.borderFG(ctx.Theme.Palette).Base)
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	outer := c.width
	if outer <= 0 {
		outer = ctx.InnerWidth()
	}
	inner := ctx
	if outer > 0 {
		width := max(outer-style.GetHorizontalFrameSize(), 1)
		// lipgloss widths include padding but not the border
		style = style.Width(width + style.GetHorizontalPadding())
		inner = ctx.WithConstraints(WithMaxWidth(width))
		inner.ParentWidth = width
	}

	return c.measured(style.Render(c.body.ViewWithContext(inner)))
}

// WithBorder sets the border.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor tints the border with a palette slot.
func (c *Container) WithBorderColor(slot PaletteSlot) *Container {
	c.borderFG = slot
	return c
}

// WithPadding sets the padding inside the border.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the outer width.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithGap sets the blank rows between children.
func (c *Container) WithGap(gap int) *Container {
	c.body.WithGap(gap)
	return c
}
