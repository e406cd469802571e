// Package page is the interactive campaign page: a scrolling column of
// sections that reveal as they come into view, a slide-in navigation menu and
// a fullscreen image viewer.
package page

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/logger"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

// Options configures a page.
type Options struct {
	Theme components.Theme
	// MarkdownStyle names the glamour style for section bodies.
	MarkdownStyle   string
	Markdown        bool
	Threshold       float64
	PlaceholderBase string
	NavBreakpoint   int
	Animate         bool
	Mode            media.Mode
	Loader          media.Loader
	ImageTimeout    time.Duration
	ImageHeight     int
	HeroImageHeight int
	Icons           components.IconProvider
	Clipboard       Clipboard
	Logger          *logger.Logger
}

// DefaultOptions returns options for an animated page with local images.
func DefaultOptions() Options {
	return Options{
		Theme:           components.DefaultTheme(),
		MarkdownStyle:   "notty",
		Markdown:        true,
		Threshold:       visibility.DefaultThreshold,
		PlaceholderBase: media.DefaultPlaceholderBase,
		NavBreakpoint:   100,
		Animate:         true,
		Mode:            media.ModeTrueColor,
		ImageTimeout:    10 * time.Second,
		ImageHeight:     10,
		HeroImageHeight: 12,
	}
}

func (o Options) normalize() Options {
	defaults := DefaultOptions()
	if o.Theme.Variants == nil {
		o.Theme = defaults.Theme
	}
	if o.PlaceholderBase == "" {
		o.PlaceholderBase = defaults.PlaceholderBase
	}
	if o.ImageTimeout <= 0 {
		o.ImageTimeout = defaults.ImageTimeout
	}
	if o.ImageHeight <= 0 {
		o.ImageHeight = defaults.ImageHeight
	}
	if o.HeroImageHeight <= 0 {
		o.HeroImageHeight = defaults.HeroImageHeight
	}
	if o.Icons == nil {
		o.Icons = components.DefaultIcons()
	}
	if o.Loader == nil {
		o.Loader = media.NewChainLoader(o.PlaceholderBase, "", false, o.ImageTimeout)
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// Model is the page. It owns the menu and the viewer, one reveal card per
// section and the hero.
type Model struct {
	// Content
	doc *content.Document

	// Configuration
	opts   Options
	theme  components.Theme
	styles styles
	icons  components.IconProvider
	log    *logger.Logger
	loader media.Loader

	// Lifetime of in-flight image loads
	ctx    context.Context
	cancel context.CancelFunc

	// Component state
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	spinner  spinner.Model
	body     *bodyRenderer

	// Interaction state
	observer  *visibility.Observer
	listeners *KeyListeners
	overlay   *OverlayPanel
	viewer    *FullscreenViewer
	hero      *heroBlock
	cards     []*RevealCard
	layout    *pageLayout

	heroStage   int
	focus       int
	loading     map[string]string
	reported    map[string]bool
	animating   bool
	interactive bool
	unmounted   bool

	flash    string
	flashSeq int
	showHelp bool

	// Dimensions
	width  int
	height int
	ready  bool
}

// New builds a page for doc.
func New(doc *content.Document, opts Options) Model {
	opts = opts.normalize()
	ctx, cancel := context.WithCancel(context.Background())

	s := spinner.New()
	s.Spinner = spinner.Dot

	listeners := NewKeyListeners()
	observer := visibility.NewObserver()

	m := Model{
		doc:         doc,
		opts:        opts,
		theme:       opts.Theme,
		styles:      newStyles(opts.Theme),
		icons:       opts.Icons,
		log:         opts.Logger,
		loader:      opts.Loader,
		ctx:         ctx,
		cancel:      cancel,
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		body:        newBodyRenderer(opts.Markdown, opts.MarkdownStyle),
		observer:    observer,
		listeners:   listeners,
		loading:     make(map[string]string),
		reported:    make(map[string]bool),
		interactive: true,
		width:       80,
		height:      24,
	}
	m.spinner.Style = m.styles.spinner

	m.hero = newHeroBlock(doc.Hero, opts)
	m.overlay = NewOverlayPanel("Menu", menuItems(doc), listeners, opts.Animate)
	m.viewer = NewFullscreenViewer(listeners, opts.PlaceholderBase, opts.Mode, opts.Clipboard)

	cardOpts := CardOptions{
		Threshold:       opts.Threshold,
		PlaceholderBase: opts.PlaceholderBase,
		Mode:            opts.Mode,
		Animate:         opts.Animate,
		Icons:           opts.Icons,
		ImageHeight:     opts.ImageHeight,
	}
	for _, section := range doc.Sections {
		body := markdownBody{text: section.Body, renderer: m.body}
		m.cards = append(m.cards, NewRevealCard(section, body, observer, cardOpts))
	}

	if !opts.Animate {
		m.heroStage = heroCTA
	}
	for _, slot := range m.slots() {
		m.loading[slot.ID()] = slot.Src()
	}
	return m
}

// menuItems builds the menu from the nav list. Items without a section are
// kept but disabled.
func menuItems(doc *content.Document) []MenuItem {
	items := make([]MenuItem, 0, len(doc.Nav))
	for _, nav := range doc.Nav {
		_, ok := doc.SectionByID(nav.ID)
		items = append(items, MenuItem{ID: nav.ID, Label: nav.Label, Enabled: ok})
	}
	return items
}

// Init starts the hero sequence, the spinner and every image load.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.heroStage < heroCTA {
		cmds = append(cmds, heroStagesCmd())
	}
	for _, slot := range m.slots() {
		cmds = append(cmds, m.loadCmd(slot))
	}
	return tea.Batch(cmds...)
}

// loadCmd starts loading slot. The spinner stops ticking whenever nothing is
// loading, so the first load after an idle period restarts it.
func (m *Model) loadCmd(slot *media.Slot) tea.Cmd {
	idle := len(m.loading) == 0
	m.loading[slot.ID()] = slot.Src()
	load := loadImageCmd(m.ctx, m.loader, m.opts.ImageTimeout, slot.ID(), slot.Src())
	if idle {
		return tea.Batch(load, m.spinner.Tick)
	}
	return load
}

// slots returns the hero slot followed by every card slot.
func (m *Model) slots() []*media.Slot {
	slots := make([]*media.Slot, 0, len(m.cards)+1)
	slots = append(slots, m.hero.slot)
	for _, card := range m.cards {
		slots = append(slots, card.Slot())
	}
	return slots
}

// slotByID finds a slot, including the viewer's while it is shown.
func (m *Model) slotByID(id string) *media.Slot {
	if id == ViewerSlotID {
		return m.viewer.Slot()
	}
	if id == HeroSlotID {
		return m.hero.slot
	}
	for _, card := range m.cards {
		if card.ID() == id {
			return card.Slot()
		}
	}
	return nil
}

func (m *Model) report(err error) {
	if err == nil || m.reported[err.Error()] {
		return
	}
	m.reported[err.Error()] = true
	m.log.Warn(err.Error())
}

// Unmount releases everything the page holds: trackers, key listeners and
// in-flight loads. It is safe to call more than once.
func (m *Model) Unmount() {
	if m.unmounted {
		return
	}
	m.unmounted = true
	m.cancel()
	for _, card := range m.cards {
		card.Close()
	}
	m.overlay.Unmount()
	m.viewer.Unmount()
}

// Accessors

// Cards returns the reveal cards in page order.
func (m Model) Cards() []*RevealCard { return m.cards }

// Overlay returns the navigation menu.
func (m Model) Overlay() *OverlayPanel { return m.overlay }

// Viewer returns the fullscreen viewer.
func (m Model) Viewer() *FullscreenViewer { return m.viewer }

// Listeners returns the page's key listener registry.
func (m Model) Listeners() *KeyListeners { return m.listeners }

// Observer returns the page's visibility observer.
func (m Model) Observer() *visibility.Observer { return m.observer }

// Unmounted reports whether the page has been torn down.
func (m Model) Unmounted() bool { return m.unmounted }

// Anchors returns the section ids in page order with their content rows.
func (m Model) Anchors() ([]string, map[string]int) {
	if m.layout == nil {
		return nil, nil
	}
	return m.layout.order, m.layout.anchors
}

// YOffset returns the first content row in view.
func (m Model) YOffset() int { return m.viewport.YOffset }

// Focus returns the index of the card nearest the top of the view.
func (m Model) Focus() int { return m.focus }
