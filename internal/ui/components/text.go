package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Text is a primitive component for rendering styled text content. It wraps
// to the width available in its render context.
type Text struct {
	BaseComponent
	content string
	noWrap  bool
	align   lipgloss.Position
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		align:         lipgloss.Left,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if width := ctx.InnerWidth(); width > 0 && !t.noWrap {
		style = style.Width(width).Align(t.align)
	}
	return t.measured(style.Render(t.content))
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithNoWrap renders the text at its natural width.
func (t *Text) WithNoWrap() *Text {
	t.noWrap = true
	return t
}

// WithAlign sets horizontal alignment within the wrap width.
func (t *Text) WithAlign(pos lipgloss.Position) *Text {
	t.align = pos
	return t
}

// WithHandle sets the attachment handle the text measures into.
func (t *Text) WithHandle(h *ui.Handle) *Text {
	t.SetHandle(h)
	return t
}

// BodyText creates body copy using theme typography.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}

// MutedText creates de-emphasised text using theme typography.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

// CaptionText creates a caption using theme typography.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCaption))
}

// EmphasisText creates emphasized text using theme typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}
