package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

const (
	maxColumnWidth = 96
	minColumnWidth = 24
	navbarHeight   = 2
)

type zoneAction int

const (
	zoneNavigate zoneAction = iota
	zoneEnlarge
	zoneMenu
)

// zone is a clickable rectangle. Page zones use content coordinates, navbar
// zones use screen coordinates.
type zone struct {
	rect   visibility.Rect
	action zoneAction
	id     string
}

// pageLayout is one rendering of the scrollable page.
type pageLayout struct {
	content string
	height  int
	column  int
	left    int

	// anchors maps section ids to their first content row.
	anchors map[string]int
	order   []string
	zones   []zone

	navbar   string
	navZones []zone
}

// Anchor returns the content row of a section.
func (l *pageLayout) Anchor(id string) (int, bool) {
	if l == nil {
		return 0, false
	}
	row, ok := l.anchors[id]
	return row, ok
}

func (l *pageLayout) zoneAt(zones []zone, x, y int) (zone, bool) {
	for _, z := range zones {
		if z.rect.Contains(x, y) {
			return z, true
		}
	}
	return zone{}, false
}

// columnFor returns the content column width and left margin for a screen.
func columnFor(width int) (column, left int) {
	column = min(width-2, maxColumnWidth)
	if column < minColumnWidth {
		column = max(width, 1)
	}
	return column, max((width-column)/2, 0)
}

func (m *Model) renderContext(width int) components.RenderContext {
	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithConstraints(components.WithMaxWidth(width)).
		WithReport(m.report)
	ctx.ParentWidth = width
	return ctx
}

// buildLayout renders every block of the page and records where each one
// landed. Region handles are attached at their content positions.
func (m *Model) buildLayout(width int) *pageLayout {
	column, left := columnFor(width)
	ctx := m.renderContext(column)
	margin := strings.Repeat(" ", left)

	layout := &pageLayout{
		column:  column,
		left:    left,
		anchors: make(map[string]int, len(m.cards)),
	}

	var b strings.Builder
	y := 0
	place := func(view string, handle *ui.Handle) int {
		top := y
		handle.Attach(left, top)
		for _, line := range strings.Split(view, "\n") {
			b.WriteString(margin)
			b.WriteString(line)
			b.WriteByte('\n')
			y++
		}
		return top
	}
	gap := func() {
		b.WriteByte('\n')
		y++
	}

	gap()
	heroTop := place(m.hero.View(ctx, m.heroStage), m.hero.handle)
	if anchor := m.hero.Anchor(); anchor != "" && !m.hero.ctaRect.Empty() && m.heroStage >= heroCTA {
		layout.zones = append(layout.zones, zone{rect: offset(m.hero.ctaRect, left, heroTop), action: zoneNavigate, id: anchor})
	}
	layout.zones = append(layout.zones, zone{rect: offset(m.hero.imageRect, left, heroTop), action: zoneEnlarge, id: HeroSlotID})
	gap()

	if intro := m.doc.Site.Intro; intro.Title != "" || intro.Body != "" {
		panel := components.NewPanel(components.BodyText(intro.Body)).
			WithTitle(intro.Title).
			WithVariant(components.VariantOutline)
		place(panel.ViewWithContext(ctx), nil)
		gap()
	}

	for i, card := range m.cards {
		top := place(card.View(ctx, m.interactive && i == m.focus), card.Region())
		layout.anchors[card.ID()] = top
		layout.order = append(layout.order, card.ID())
		if card.Progress() > 0 {
			layout.zones = append(layout.zones, zone{rect: offset(card.ImageRect(), left, top), action: zoneEnlarge, id: card.ID()})
		}
		gap()
	}

	place(m.footerView(ctx), nil)

	layout.content = strings.TrimSuffix(b.String(), "\n")
	layout.height = y
	layout.navbar, layout.navZones = m.navbarView(width)
	return layout
}

func offset(r visibility.Rect, dx, dy int) visibility.Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (m *Model) footerView(ctx components.RenderContext) string {
	footer := m.doc.Site.Footer
	children := []ui.Renderable{components.NewDivider()}
	if footer.Tagline != "" {
		children = append(children, components.NewText(footer.Tagline).
			WithStyle(m.styles.tagline).
			WithAlign(lipgloss.Center))
	}
	if footer.Notice != "" {
		children = append(children, components.NewText(footer.Notice).
			WithStyle(m.styles.notice).
			WithAlign(lipgloss.Center))
	}
	return components.VStack(children...).ViewWithContext(ctx)
}

// navbarView renders the top bar: brand on the left, section links on wide
// screens or a menu button on narrow ones, then a rule.
func (m *Model) navbarView(width int) (string, []zone) {
	ctx := m.renderContext(width)
	brand := m.styles.brand.Render(m.doc.Site.Brand.Name)
	x := lipgloss.Width(brand)

	var zones []zone
	var parts []string
	if width >= m.opts.NavBreakpoint {
		for _, item := range m.overlay.Items() {
			button := components.NewButton(item.Label).
				WithVariant(components.VariantGhost).
				WithSize(components.SizeSmall).
				WithDisabled(!item.Enabled).
				ViewWithContext(ctx)
			w := lipgloss.Width(button)
			if x+w > width {
				break
			}
			if item.Enabled {
				zones = append(zones, zone{rect: visibility.Rect{X: x, Y: 0, Width: w, Height: 1}, action: zoneNavigate, id: item.ID})
			}
			parts = append(parts, button)
			x += w
		}
	} else {
		button := components.IconButton(m.icons.Icon("menu"), "Menu").
			WithVariant(components.VariantGhost).
			ViewWithContext(ctx)
		w := lipgloss.Width(button)
		spacer := strings.Repeat(" ", max(width-x-w, 0))
		parts = append(parts, spacer, button)
		zones = append(zones, zone{rect: visibility.Rect{X: x + len(spacer), Y: 0, Width: w, Height: 1}, action: zoneMenu})
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{brand}, parts...)...)
	bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	rule := m.styles.rule.Render(strings.Repeat("─", max(width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule), zones
}
