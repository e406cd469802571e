package components

import (
	"strings"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Link is an in-page anchor such as "#permasalahan".
type Link struct {
	BaseComponent
	text string
	href string
}

// NewLink creates a link to href.
func NewLink(text, href string) *Link {
	return &Link{
		BaseComponent: NewBaseComponent(),
		text:          text,
		href:          href,
	}
}

// View renders the link.
func (l *Link) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the link text underlined in the primary colour.
func (l *Link) ViewWithContext(ctx RenderContext) string {
	style := l.ComputeStyle(ctx.Theme).
		Foreground(ctx.Theme.Palette.Primary.Base).
		Underline(true)
	return l.measured(style.Render(l.text))
}

// WithHandle sets the attachment handle the link measures into.
func (l *Link) WithHandle(h *ui.Handle) *Link {
	l.SetHandle(h)
	return l
}

// Text returns the link text.
func (l *Link) Text() string {
	return l.text
}

// Href returns the raw destination.
func (l *Link) Href() string {
	return l.href
}

// Anchor returns the in-page fragment without its leading '#', or "" when the
// destination is not an in-page anchor.
func (l *Link) Anchor() string {
	if !strings.HasPrefix(l.href, "#") {
		return ""
	}
	return strings.TrimPrefix(l.href, "#")
}
