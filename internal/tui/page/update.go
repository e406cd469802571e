package page

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

const wheelStep = 3

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.unmounted {
		return m, nil
	}

	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if len(m.loading) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Animation messages
	case heroStageMsg:
		if msg.Stage > m.heroStage {
			m.heroStage = msg.Stage
			m.render()
		}
		return m, nil

	case frameMsg:
		m.animating = false
		moving := m.overlay.Advance()
		for _, card := range m.cards {
			if card.Advance() {
				moving = true
			}
		}
		m.render()
		if moving {
			m.animating = true
			return m, frameCmd()
		}
		return m, nil

	// Image messages
	case ImageLoadedMsg:
		m.settleLoad(msg.SlotID, msg.Src)
		slot := m.slotByID(msg.SlotID)
		if slot == nil {
			return m, nil
		}
		if slot.Loaded(msg.Src, msg.Image) {
			m.render()
		}
		return m, nil

	case ImageFailedMsg:
		m.settleLoad(msg.SlotID, msg.Src)
		slot := m.slotByID(msg.SlotID)
		if slot == nil {
			return m, nil
		}
		if msg.Src != slot.Src() {
			return m, nil
		}
		m.log.WithFields(map[string]any{
			"slot": msg.SlotID,
			"src":  msg.Src,
		}).Warn("image load failed: %v", msg.Err)
		if slot.Fail(msg.Src) {
			m.render()
			return m, m.loadCmd(slot)
		}
		m.render()
		return m, nil

	// Interaction messages
	case EnlargeMsg:
		return m, m.enlarge(msg.Target, true)

	case NavigateMsg:
		return m, m.navigate(msg.ID)

	case flashClearMsg:
		if msg.Seq == m.flashSeq {
			m.flash = ""
			m.resize(m.width, m.height)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) settleLoad(slotID, src string) {
	if m.loading[slotID] == src {
		delete(m.loading, slotID)
	}
}

// handleKeyPress routes a key: quit first, then active overlays through the
// listener registry, then page navigation.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Unmount()
		return m, tea.Quit
	}

	if cmd, ok := m.listeners.Dispatch(msg); ok {
		m.render()
		return m, tea.Batch(cmd, m.startFrames())
	}

	if m.viewer.Shown() {
		if key.Matches(msg, m.keys.Copy) {
			return m, m.copySource()
		}
		return m, nil
	}
	if m.overlay.IsOpen() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		return m, m.scrollTo(m.viewport.YOffset - 1)

	case key.Matches(msg, m.keys.Down):
		return m, m.scrollTo(m.viewport.YOffset + 1)

	case key.Matches(msg, m.keys.PageUp):
		return m, m.scrollTo(m.viewport.YOffset - m.viewport.Height)

	case key.Matches(msg, m.keys.PageDown):
		return m, m.scrollTo(m.viewport.YOffset + m.viewport.Height)

	case key.Matches(msg, m.keys.Top):
		return m, m.scrollTo(0)

	case key.Matches(msg, m.keys.Bottom):
		return m, m.scrollTo(m.maxOffset())

	case key.Matches(msg, m.keys.Menu):
		if m.overlay.Open() {
			m.render()
			return m, m.startFrames()
		}
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		index, err := strconv.Atoi(msg.String())
		if err != nil || index < 1 || index > len(m.cards) {
			return m, nil
		}
		return m, m.navigate(m.cards[index-1].ID())

	case key.Matches(msg, m.keys.Enlarge):
		if m.focus < 0 || m.focus >= len(m.cards) {
			return m, nil
		}
		return m, enlargeCmd(m.cards[m.focus].Enlarge())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resize(m.width, m.height)
		return m, m.refresh()

	case key.Matches(msg, m.keys.Close):
		if m.flash != "" {
			m.flash = ""
			m.resize(m.width, m.height)
		}
		return m, nil
	}

	return m, nil
}

// handleMouse routes clicks to the viewer, then the menu, then the navbar
// and page zones. Wheel events scroll the page when no overlay is up.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	overlayUp := m.viewer.Shown() || m.overlay.IsOpen()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if overlayUp {
			return m, nil
		}
		return m, m.scrollTo(m.viewport.YOffset - wheelStep)
	case tea.MouseButtonWheelDown:
		if overlayUp {
			return m, nil
		}
		return m, m.scrollTo(m.viewport.YOffset + wheelStep)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m, m.click(msg.X, msg.Y)
}

// click handles a left click at screen coordinates.
func (m *Model) click(x, y int) tea.Cmd {
	if m.viewer.Shown() {
		m.viewer.Click(x, y, m.width, m.height)
		return nil
	}
	if cmd, ok := m.overlay.Click(x, y, m.width, m.height); ok {
		m.render()
		return tea.Batch(cmd, m.startFrames())
	}
	if m.layout == nil {
		return nil
	}

	if y < navbarHeight {
		z, ok := m.layout.zoneAt(m.layout.navZones, x, y)
		if !ok {
			return nil
		}
		return m.activate(z)
	}

	row := y - navbarHeight
	if row >= m.viewport.Height {
		return nil
	}
	z, ok := m.layout.zoneAt(m.layout.zones, x, row+m.viewport.YOffset)
	if !ok {
		return nil
	}
	return m.activate(z)
}

func (m *Model) activate(z zone) tea.Cmd {
	switch z.action {
	case zoneNavigate:
		return m.navigate(z.id)
	case zoneMenu:
		if m.overlay.Open() {
			m.render()
			return m.startFrames()
		}
	case zoneEnlarge:
		if z.id == HeroSlotID {
			return enlargeCmd(m.hero.Enlarge())
		}
		for _, card := range m.cards {
			if card.ID() == z.id {
				return enlargeCmd(card.Enlarge())
			}
		}
	}
	return nil
}

// enlarge shows target in the viewer. Pixels already decoded for the same
// source are reused; otherwise the viewer loads its own copy.
func (m *Model) enlarge(target *media.EnlargeRequest, ok bool) tea.Cmd {
	if target == nil || !ok {
		return nil
	}
	if !m.viewer.Show(target) {
		return nil
	}
	// The menu and the viewer are never open together.
	var frames tea.Cmd
	if m.overlay.Close() {
		frames = m.startFrames()
	}
	m.render()

	slot := m.viewer.Slot()
	for _, candidate := range m.slots() {
		if candidate.Src() == target.Src && candidate.State() == media.StateLoaded {
			slot.Loaded(target.Src, candidate.Image())
			return frames
		}
	}
	return tea.Batch(frames, m.loadCmd(slot))
}

// navigate scrolls the section anchor to the top of the view.
func (m *Model) navigate(id string) tea.Cmd {
	row, ok := m.layout.Anchor(id)
	if !ok {
		m.log.WithFields(map[string]any{"id": id}).Warn("navigation to unknown section")
		return nil
	}
	return m.scrollTo(row)
}

func (m *Model) scrollTo(offset int) tea.Cmd {
	m.viewport.SetYOffset(min(max(offset, 0), m.maxOffset()))
	return m.refresh()
}

func (m *Model) maxOffset() int {
	if m.layout == nil {
		return 0
	}
	return max(m.layout.height-m.viewport.Height, 0)
}

func (m *Model) copySource() tea.Cmd {
	src, err := m.viewer.Copy()
	if err != nil {
		m.log.Error(err, "copy to clipboard failed")
		return m.setFlash("Clipboard unavailable")
	}
	return m.setFlash("Copied " + src)
}

func (m *Model) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashSeq++
	m.resize(m.width, m.height)
	return flashClearCmd(m.flashSeq)
}

// resize fits the viewport between the navbar and the status line.
func (m *Model) resize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.help.Width = m.width

	viewHeight := max(m.height-navbarHeight-lipgloss.Height(m.statusView()), 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, viewHeight)
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = viewHeight
}

// render rebuilds the page content at the current width.
func (m *Model) render() {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	m.layout = m.buildLayout(m.width)
	m.viewport.SetContent(m.layout.content)
	m.viewport.SetYOffset(min(offset, m.maxOffset()))
}

// refresh re-renders, tells the observer what is in view and starts
// animations for regions that were just seen.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}
	m.render()

	before := m.seenCount()
	m.observer.Notify(m.viewportRect())
	focus := m.nearestCard()
	if before != m.seenCount() || focus != m.focus {
		m.focus = focus
		m.render()
	}
	return m.startFrames()
}

func (m *Model) startFrames() tea.Cmd {
	if m.animating || !m.opts.Animate {
		return nil
	}
	moving := m.overlay.Animating()
	for _, card := range m.cards {
		if card.Animating() {
			moving = true
		}
	}
	if !moving {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// viewportRect is the visible part of the page in content coordinates.
func (m *Model) viewportRect() visibility.Rect {
	return visibility.Rect{
		X:      0,
		Y:      m.viewport.YOffset,
		Width:  m.width,
		Height: m.viewport.Height,
	}
}

func (m *Model) seenCount() int {
	n := 0
	for _, card := range m.cards {
		if card.Seen() {
			n++
		}
	}
	return n
}

// nearestCard returns the first card whose region reaches into the view.
func (m *Model) nearestCard() int {
	top := m.viewport.YOffset
	for i, card := range m.cards {
		bounds, ok := card.Region().Bounds()
		if ok && bounds.Y+bounds.Height > top {
			return i
		}
	}
	return max(len(m.cards)-1, 0)
}
