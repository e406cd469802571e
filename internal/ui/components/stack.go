package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
)

// Stack places children in a column. Children that render nothing take no
// rows, so a missing subtitle or empty body leaves no gap behind.
type Stack struct {
	BaseComponent
	children []ui.Renderable
	gap      int
	align    lipgloss.Position
}

// VStack creates a left-aligned column.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		align:         lipgloss.Left,
	}
}

// View renders the column without layout context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with ctx and joins them. The column
// never grows past the context's maximum width.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	rows := make([]string, 0, 2*len(s.children))
	for _, child := range s.children {
		view := render(child, ctx)
		if view == "" {
			continue
		}
		if len(rows) > 0 && s.gap > 0 {
			// a string of n newlines is n+1 blank rows once joined
			rows = append(rows, strings.Repeat("\n", s.gap-1))
		}
		rows = append(rows, view)
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if len(rows) == 0 {
		return s.measured("")
	}
	return s.measured(style.Render(lipgloss.JoinVertical(s.align, rows...)))
}

// WithGap sets the blank rows between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithAlign sets how narrower children sit within the widest one.
func (s *Stack) WithAlign(pos lipgloss.Position) *Stack {
	s.align = pos
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}
