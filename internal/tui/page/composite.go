package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws fg lines over background with their top-left corner at
// (x, y). The result always has height lines of width cells.
func overlayAt(background string, fg []string, width, height, x, y int) string {
	bg := fitLines(background, width, height)
	x = max(x, 0)
	y = max(y, 0)

	for i, line := range fg {
		row := y + i
		if row >= len(bg) {
			break
		}
		fgWidth := ansi.StringWidth(line)
		if x+fgWidth > width {
			line = ansi.Cut(line, 0, width-x)
			fgWidth = width - x
		}
		if fgWidth <= 0 {
			continue
		}
		left := ansi.Cut(bg[row], 0, x)
		right := ansi.Cut(bg[row], x+fgWidth, width)
		bg[row] = left + line + right
	}
	return strings.Join(bg, "\n")
}

// fitLines splits s into exactly height lines padded to width cells.
func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		} else if w > width {
			lines[i] = ansi.Cut(line, 0, width)
		}
	}
	return lines
}

// dim renders a scrim over s, keeping its layout.
func dim(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
