package page

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

// MenuItem is one entry of the navigation menu. Items without a matching
// section are disabled.
type MenuItem struct {
	ID      string
	Label   string
	Enabled bool
}

const (
	menuMaxWidth  = 48
	settleEpsilon = 0.005
)

// OverlayPanel is the slide-in navigation menu. It is either open or closed;
// the slide offset only affects drawing. A closed panel never handles input,
// even while it is still sliding out.
type OverlayPanel struct {
	items   []MenuItem
	title   string
	open    bool
	cursor  int
	animate bool

	// hidden is the slid-out fraction, 1 when fully off screen.
	hidden   float64
	velocity float64
	spring   harmonica.Spring

	keys      keyMap
	listeners *KeyListeners
	releases  []func()

	header   *ui.Handle
	rows     []*ui.Handle
	itemsTop int
}

// NewOverlayPanel creates a closed panel. Key listeners are taken from
// listeners while the panel is open.
func NewOverlayPanel(title string, items []MenuItem, listeners *KeyListeners, animate bool) *OverlayPanel {
	rows := make([]*ui.Handle, len(items))
	for i, item := range items {
		rows[i] = ui.NewHandle("menu-" + item.ID)
	}
	return &OverlayPanel{
		items:     items,
		title:     title,
		animate:   animate,
		hidden:    1,
		spring:    harmonica.NewSpring(harmonica.FPS(frameRate), 9.0, 1.0),
		keys:      defaultKeyMap(),
		listeners: listeners,
		header:    ui.NewHandle("menu-header"),
		rows:      rows,
	}
}

// IsOpen reports the panel state.
func (p *OverlayPanel) IsOpen() bool {
	return p.open
}

// Interactive reports whether the panel handles input. It is true only
// while open.
func (p *OverlayPanel) Interactive() bool {
	return p.open
}

// Visible reports whether any part of the panel is on screen.
func (p *OverlayPanel) Visible() bool {
	return p.open || p.hidden < 1
}

// Items returns the menu entries.
func (p *OverlayPanel) Items() []MenuItem {
	return p.items
}

// Cursor returns the highlighted item index.
func (p *OverlayPanel) Cursor() int {
	return p.cursor
}

// Open shows the panel. It does nothing while already open.
func (p *OverlayPanel) Open() bool {
	if p.open {
		return false
	}
	p.open = true
	p.cursor = p.firstEnabled()
	if !p.animate {
		p.hidden, p.velocity = 0, 0
	}

	p.releases = append(p.releases,
		p.listeners.Add(p.keys.Close, func(tea.KeyMsg) tea.Cmd {
			p.Close()
			return nil
		}),
		p.listeners.Add(p.keys.Up, func(tea.KeyMsg) tea.Cmd {
			p.move(-1)
			return nil
		}),
		p.listeners.Add(p.keys.Down, func(tea.KeyMsg) tea.Cmd {
			p.move(1)
			return nil
		}),
		p.listeners.Add(p.keys.Select, func(tea.KeyMsg) tea.Cmd {
			if p.cursor < 0 || p.cursor >= len(p.items) {
				p.Close()
				return nil
			}
			return navigateCmd(p.Select(p.items[p.cursor].ID))
		}),
	)
	return true
}

// Close hides the panel. It does nothing while already closed.
func (p *OverlayPanel) Close() bool {
	if !p.open {
		return false
	}
	p.open = false
	p.release()
	if !p.animate {
		p.hidden, p.velocity = 1, 0
	}
	return true
}

// Select closes the panel and returns the section id to navigate to. Disabled
// or unknown items only close the panel.
func (p *OverlayPanel) Select(id string) (string, bool) {
	if !p.open {
		return "", false
	}
	p.Close()
	for _, item := range p.items {
		if item.ID == id && item.Enabled {
			return id, true
		}
	}
	return "", false
}

// ClickBackdrop closes the panel.
func (p *OverlayPanel) ClickBackdrop() bool {
	return p.Close()
}

// Unmount closes the panel immediately and releases its listeners.
func (p *OverlayPanel) Unmount() {
	p.open = false
	p.release()
	p.hidden, p.velocity = 1, 0
}

// Animating reports whether the slide has not settled.
func (p *OverlayPanel) Animating() bool {
	return p.hidden != p.target()
}

// Advance moves the slide one frame toward its resting position and reports
// whether it is still moving.
func (p *OverlayPanel) Advance() bool {
	target := p.target()
	if p.hidden == target {
		return false
	}
	p.hidden, p.velocity = p.spring.Update(p.hidden, p.velocity, target)
	if math.Abs(p.hidden-target) < settleEpsilon && math.Abs(p.velocity) < settleEpsilon {
		p.hidden, p.velocity = target, 0
	}
	p.hidden = min(max(p.hidden, 0), 1)
	return p.hidden != target
}

func (p *OverlayPanel) target() float64 {
	if p.open {
		return 0
	}
	return 1
}

func (p *OverlayPanel) release() {
	for _, release := range p.releases {
		release()
	}
	p.releases = nil
}

func (p *OverlayPanel) firstEnabled() int {
	for i, item := range p.items {
		if item.Enabled {
			return i
		}
	}
	return 0
}

func (p *OverlayPanel) move(delta int) {
	if len(p.items) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.items)) % len(p.items)
}

// Width returns the panel width for a screen width.
func (p *OverlayPanel) Width(screenWidth int) int {
	return max(min(screenWidth*3/4, menuMaxWidth), 1)
}

// Left returns the screen column of the panel's left edge.
func (p *OverlayPanel) Left(screenWidth int) int {
	width := p.Width(screenWidth)
	shown := int(math.Round(float64(width) * (1 - p.hidden)))
	return screenWidth - shown
}

// HitTest reports whether (x, y) lands on the panel. It never matches while
// the panel is closed.
func (p *OverlayPanel) HitTest(x, y, screenWidth, screenHeight int) bool {
	if !p.Interactive() {
		return false
	}
	return x >= p.Left(screenWidth) && x < screenWidth && y >= 0 && y < screenHeight
}

// Click handles a mouse press. Clicks on an item select it, clicks beside the
// panel close it. A closed panel never handles clicks.
func (p *OverlayPanel) Click(x, y, screenWidth, screenHeight int) (tea.Cmd, bool) {
	if !p.Interactive() {
		return nil, false
	}
	if !p.HitTest(x, y, screenWidth, screenHeight) {
		p.ClickBackdrop()
		return nil, true
	}
	if index := p.rowAt(y); index >= 0 {
		return navigateCmd(p.Select(p.items[index].ID)), true
	}
	return nil, true
}

func (p *OverlayPanel) rowAt(y int) int {
	row := p.itemsTop
	for i, handle := range p.rows {
		_, height := handle.Size()
		height = max(height, 1)
		if y >= row && y < row+height {
			return i
		}
		row += height
	}
	return -1
}

// View renders the full panel at the given size.
func (p *OverlayPanel) View(ctx components.RenderContext, width, height int) string {
	buttons := make([]ui.Renderable, 0, len(p.items))
	for i, item := range p.items {
		buttons = append(buttons, components.NewButton(item.Label).
			WithVariant(components.VariantGhost).
			WithSize(components.SizeSmall).
			WithFocused(p.open && i == p.cursor).
			WithDisabled(!item.Enabled).
			WithHandle(p.rows[i]))
	}

	panel := components.NewPanel(buttons...).
		WithHeader(components.NewHeader(p.title).WithLevel(2).WithHandle(p.header)).
		WithVariant(components.VariantSecondary).
		WithWidth(width).
		WithHeight(height)
	view := panel.ViewWithContext(ctx)

	desc, _ := components.NewResolver(ctx.Theme).ResolveOrDefault(components.KindPanel, components.VariantSecondary, components.SizeDefault)
	_, headerHeight := p.header.Size()
	top := desc.PaddingY + headerHeight + 1
	if desc.Bordered {
		top++
	}
	p.itemsTop = top
	return view
}

// Overlay draws the panel over background at its current slide position.
func (p *OverlayPanel) Overlay(ctx components.RenderContext, background string, screenWidth, screenHeight int) string {
	if !p.Visible() {
		return background
	}
	width := p.Width(screenWidth)
	left := p.Left(screenWidth)
	shown := screenWidth - left
	if shown <= 0 {
		return background
	}

	lines := strings.Split(p.View(ctx, width, screenHeight), "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, 0, shown)
	}
	return overlayAt(background, lines, screenWidth, screenHeight, left, 0)
}
