package components

import (
	"strings"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// RenderTarget selects how a Button materialises.
type RenderTarget int

const (
	// TargetNative renders the button as its own control.
	TargetNative RenderTarget = iota
	// TargetPassThrough renders a wrapped child, such as a Link, with the
	// button's style and none of its own chrome.
	TargetPassThrough
)

func (t RenderTarget) String() string {
	if t == TargetPassThrough {
		return "pass-through"
	}
	return "native"
}

// Button is a clickable control whose look is resolved from a variant and size.
type Button struct {
	BaseComponent
	label    string
	icon     string
	child    ui.Renderable
	target   RenderTarget
	variant  Variant
	size     Size
	disabled bool
	focused  bool
	hovered  bool
}

// NewButton creates a default-variant, default-size button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		target:        TargetNative,
		variant:       VariantDefault,
		size:          SizeDefault,
	}
}

// IconButton creates an icon-sized button showing a single glyph.
func IconButton(glyph, label string) *Button {
	return NewButton(label).WithIcon(glyph).WithSize(SizeIcon)
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context. Unknown
// variants or sizes are reported through ctx and rendered with the defaults.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	desc := ctx.resolve(KindButton, b.variant, b.size)
	state := State{Hovered: b.hovered, Focused: b.focused, Disabled: b.disabled}
	style := b.decorate(desc.StyleFor(ctx.Theme, state), ctx.Theme)

	if b.target == TargetPassThrough && b.child != nil {
		style = style.UnsetPadding().UnsetBorderStyle().UnsetWidth()
		if labelled, ok := b.child.(interface{ Text() string }); ok {
			return b.measured(style.Render(labelled.Text()))
		}
		return b.measured(style.Render(render(b.child, ctx)))
	}

	return b.measured(style.Render(b.content(desc)))
}

func (b *Button) content(desc StyleDescriptor) string {
	if desc.Size == SizeIcon {
		if b.icon != "" {
			return b.icon
		}
		return firstRune(b.label)
	}
	if b.icon == "" {
		return b.label
	}
	return strings.TrimSpace(b.icon + " " + b.label)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// WithVariant sets the emphasis variant.
func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size.
func (b *Button) WithSize(size Size) *Button {
	b.size = size
	return b
}

// WithIcon sets a glyph shown before the label, or alone at icon size.
func (b *Button) WithIcon(glyph string) *Button {
	b.icon = glyph
	return b
}

// AsChild makes the button render child in place of its own control.
func (b *Button) AsChild(child ui.Renderable) *Button {
	b.child = child
	b.target = TargetPassThrough
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused sets the focused state.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithHovered sets the hovered state.
func (b *Button) WithHovered(hovered bool) *Button {
	b.hovered = hovered
	return b
}

// WithAppliers applies theme-based style modifiers over the variant style.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// WithHandle sets the attachment handle the button measures into.
func (b *Button) WithHandle(h *ui.Handle) *Button {
	b.SetHandle(h)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Target reports how the button renders.
func (b *Button) Target() RenderTarget {
	return b.target
}

// Href returns the destination of a wrapped link, if any.
func (b *Button) Href() string {
	if link, ok := b.child.(*Link); ok {
		return link.Href()
	}
	return ""
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}
