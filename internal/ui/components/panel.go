package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Panel is a box for grouping a region of the screen, such as a slide-in
// menu. Unlike Card it can be given a fixed height.
type Panel struct {
	BaseComponent
	header   ui.Renderable
	children []ui.Renderable
	variant  Variant
	size     Size
	width    int
	height   int
}

// NewPanel creates a default panel.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
		variant:       VariantDefault,
		size:          SizeDefault,
	}
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel. A fixed height pads or clips the body.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	desc := ctx.resolve(KindPanel, p.variant, p.size)

	children := p.children
	if p.header != nil {
		children = append([]ui.Renderable{p.header, NewDivider()}, p.children...)
	}
	box := boxFor(desc, ctx.Theme, State{}, children).WithWidth(p.width)
	box.AddAppliers(p.appliers...)
	if p.height > 0 {
		frame := desc.PaddingY * 2
		if desc.Bordered {
			frame += 2
		}
		inner := max(p.height-frame, 1)
		box.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style {
			return s.Height(inner + desc.PaddingY*2).MaxHeight(p.height)
		})
	}
	return p.measured(box.ViewWithContext(ctx))
}

// WithHeader places a header and a divider above the children.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle is a convenience method to add a text header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title).WithLevel(2))
}

// WithVariant sets the panel variant.
func (p *Panel) WithVariant(variant Variant) *Panel {
	p.variant = variant
	return p
}

// WithSize sets the panel size.
func (p *Panel) WithSize(size Size) *Panel {
	p.size = size
	return p
}

// WithWidth fixes the outer width.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithHeight fixes the outer height.
func (p *Panel) WithHeight(height int) *Panel {
	p.height = height
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.SetAppliers(appliers...)
	return p
}

// WithHandle sets the attachment handle the panel measures into.
func (p *Panel) WithHandle(h *ui.Handle) *Panel {
	p.SetHandle(h)
	return p
}
