package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Header represents a heading with an optional subtitle. Level 1 headings
// use the title typography, deeper levels the emphasis typography.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
	align    lipgloss.Position
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
		align:         lipgloss.Left,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	variant := TypographyVariantTitle
	if h.level > 1 {
		variant = TypographyVariantEmphasis
	}
	style := h.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, variant))
	subtitleStyle := TypographyStyle(ctx.Theme, TypographyVariantSubtitle)
	if width := ctx.InnerWidth(); width > 0 {
		style = style.Width(width).Align(h.align)
		subtitleStyle = subtitleStyle.Width(width).Align(h.align)
	}

	if h.subtitle == "" {
		return h.measured(style.Render(h.title))
	}

	return h.measured(lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		subtitleStyle.Render(h.subtitle),
	))
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the header level, clamped to 1-3.
func (h *Header) WithLevel(level int) *Header {
	h.level = min(max(level, 1), 3)
	return h
}

// WithAlign sets horizontal alignment.
func (h *Header) WithAlign(pos lipgloss.Position) *Header {
	h.align = pos
	return h
}

// WithHandle sets the attachment handle the header measures into.
func (h *Header) WithHandle(handle *ui.Handle) *Header {
	h.SetHandle(handle)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// Level returns the header level.
func (h *Header) Level() int {
	return h.level
}
