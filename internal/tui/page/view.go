package page

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if !m.ready || m.layout == nil {
		return "Loading..."
	}

	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		m.layout.navbar,
		m.viewport.View(),
		m.statusView(),
	)

	ctx := m.renderContext(m.width)
	screen = m.overlay.Overlay(ctx, screen, m.width, m.height)
	screen = m.viewer.Overlay(ctx, screen, m.width, m.height)
	return screen
}

// statusView is the bottom line: a flash message, the loading spinner, or
// the key help for whatever currently has input.
func (m Model) statusView() string {
	if m.flash != "" {
		return m.styles.flash.Render(m.flash)
	}

	var help string
	switch {
	case m.viewer.Shown():
		help = m.help.ShortHelpView(m.keys.viewerKeys())
	case m.overlay.IsOpen():
		help = m.help.ShortHelpView(m.keys.menuKeys())
	default:
		help = m.help.View(m.keys)
	}

	line := help
	if len(m.loading) > 0 && !m.showHelp {
		line = fmt.Sprintf("%s loading %d  %s", m.spinner.View(), len(m.loading), help)
	}
	return m.styles.status.MaxWidth(m.width).Render(line)
}
