package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Card is a bordered box for one piece of content. Its border and padding
// come from the card variants of the theme.
type Card struct {
	BaseComponent
	children []ui.Renderable
	variant  Variant
	size     Size
	focused  bool
	width    int
}

// NewCard creates a default card.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
		variant:       VariantDefault,
		size:          SizeDefault,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card filling the context width.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	desc := ctx.resolve(KindCard, c.variant, c.size)
	box := boxFor(desc, ctx.Theme, State{Focused: c.focused}, c.children).
		WithWidth(c.width)
	box.AddAppliers(c.appliers...)
	return c.measured(box.WithGap(1).ViewWithContext(ctx))
}

// WithVariant sets the card variant.
func (c *Card) WithVariant(variant Variant) *Card {
	c.variant = variant
	return c
}

// WithSize sets the card size.
func (c *Card) WithSize(size Size) *Card {
	c.size = size
	return c
}

// WithFocused highlights the card border.
func (c *Card) WithFocused(focused bool) *Card {
	c.focused = focused
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.SetAppliers(appliers...)
	return c
}

// WithHandle sets the attachment handle the card measures into.
func (c *Card) WithHandle(h *ui.Handle) *Card {
	c.SetHandle(h)
	return c
}

// boxFor builds a Container dressed according to desc.
func boxFor(desc StyleDescriptor, theme Theme, state State, children []ui.Renderable) *Container {
	box := NewContainer(children...).
		WithPadding(SymmetricSpacing(desc.PaddingY, desc.PaddingX))
	if desc.Bordered {
		box.WithBorder(BorderForVariant(theme, desc.Border))
		role := desc.BorderRole
		if state.Focused && desc.Focus.BorderRole != RoleNone {
			role = desc.Focus.BorderRole
		}
		if slot, ok := role.Slot(); ok {
			box.WithBorderColor(slot)
		}
	}
	if slot, ok := desc.ColorRole.Slot(); ok && desc.Filled {
		box.WithAppliers(Background(slot))
	}
	return box
}

// CardHeader groups the title row of a card.
type CardHeader struct {
	BaseComponent
	children []ui.Renderable
}

// NewCardHeader creates a header holding children top to bottom.
func NewCardHeader(children ...ui.Renderable) *CardHeader {
	return &CardHeader{BaseComponent: NewBaseComponent(), children: children}
}

// View renders the header.
func (h *CardHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header.
func (h *CardHeader) ViewWithContext(ctx RenderContext) string {
	return h.measured(VStack(h.children...).ViewWithContext(ctx))
}

// WithHandle sets the attachment handle the header measures into.
func (h *CardHeader) WithHandle(handle *ui.Handle) *CardHeader {
	h.SetHandle(handle)
	return h
}

// CardTitle is an icon followed by a bold title.
type CardTitle struct {
	BaseComponent
	icon  string
	title string
}

// NewCardTitle creates a title. An empty icon renders the title alone.
func NewCardTitle(icon, title string) *CardTitle {
	return &CardTitle{BaseComponent: NewBaseComponent(), icon: icon, title: title}
}

// View renders the title.
func (t *CardTitle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the title, wrapping the text beside the icon.
func (t *CardTitle) ViewWithContext(ctx RenderContext) string {
	titleStyle := t.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, TypographyVariantTitle))
	if t.icon == "" {
		if width := ctx.InnerWidth(); width > 0 {
			titleStyle = titleStyle.Width(width)
		}
		return t.measured(titleStyle.Render(t.title))
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Accent.Base).
		Bold(true).
		PaddingRight(1)
	icon := iconStyle.Render(t.icon)
	if width := ctx.InnerWidth(); width > 0 {
		titleStyle = titleStyle.Width(max(width-lipgloss.Width(icon), 1))
	}
	return t.measured(lipgloss.JoinHorizontal(lipgloss.Top, icon, titleStyle.Render(t.title)))
}

// Title returns the title text.
func (t *CardTitle) Title() string {
	return t.title
}

// WithHandle sets the attachment handle the title measures into.
func (t *CardTitle) WithHandle(h *ui.Handle) *CardTitle {
	t.SetHandle(h)
	return t
}

// CardContent holds the body of a card.
type CardContent struct {
	BaseComponent
	children []ui.Renderable
	gap      int
}

// NewCardContent creates a content block with one blank row between children.
func NewCardContent(children ...ui.Renderable) *CardContent {
	return &CardContent{BaseComponent: NewBaseComponent(), children: children, gap: 1}
}

// View renders the content.
func (c *CardContent) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the content.
func (c *CardContent) ViewWithContext(ctx RenderContext) string {
	return c.measured(VStack(c.children...).WithGap(c.gap).ViewWithContext(ctx))
}

// WithGap sets the rows between children.
func (c *CardContent) WithGap(gap int) *CardContent {
	c.gap = gap
	return c
}

// WithHandle sets the attachment handle the content measures into.
func (c *CardContent) WithHandle(h *ui.Handle) *CardContent {
	c.SetHandle(h)
	return c
}
