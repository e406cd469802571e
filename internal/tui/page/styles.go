package page

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

// styles holds the page chrome styles for one theme.
type styles struct {
	brand   lipgloss.Style
	rule    lipgloss.Style
	status  lipgloss.Style
	flash   lipgloss.Style
	spinner lipgloss.Style
	tagline lipgloss.Style
	notice  lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			PaddingRight(2),
		rule: lipgloss.NewStyle().
			Foreground(p.Neutral.Base),
		status: lipgloss.NewStyle().
			Foreground(p.Text.Muted).
			PaddingLeft(1),
		flash: lipgloss.NewStyle().
			Foreground(p.Accent.Base).
			Bold(true).
			PaddingLeft(1),
		spinner: lipgloss.NewStyle().
			Foreground(p.Primary.Base),
		tagline: lipgloss.NewStyle().
			Foreground(p.Text.Base).
			Bold(true),
		notice: lipgloss.NewStyle().
			Foreground(p.Text.Muted).
			Faint(true),
	}
}
