package media

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// State is the load state of a slot's current source.
type State int

const (
	// StatePending means the current source has not loaded yet.
	StatePending State = iota
	// StateLoaded means pixels for the current source are available.
	StateLoaded
	// StateBroken means the fallback itself failed. The slot stays on the
	// fallback source and renders a text placeholder.
	StateBroken
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateBroken:
		return "broken"
	default:
		return "pending"
	}
}

// DefaultAffordance is the glyph of the enlarge control.
const DefaultAffordance = "⊕"

// SlotOptions configures a Slot.
type SlotOptions struct {
	PlaceholderBase string
	Enlargeable     bool
	Affordance      string
	Mode            Mode
}

// EnlargeRequest asks for a source to be shown fullscreen.
type EnlargeRequest struct {
	Src string
	Alt string
}

// Slot is an image region that swaps in a deterministic placeholder when its
// source fails to load. A slot only ever mutates itself.
type Slot struct {
	id           string
	original     string
	alt          string
	fallbackText string
	fallback     string
	current      string
	onFallback   bool
	state        State
	image        image.Image
	enlargeable  bool
	affordance   string
	mode         Mode

	cache viewCache
}

type viewCache struct {
	valid         bool
	width, height int
	label         string
	view          string
}

// NewSlot creates a slot for src. An empty src starts on the fallback.
func NewSlot(id, src, alt, fallbackText string, opts SlotOptions) *Slot {
	s := &Slot{
		id:           id,
		original:     src,
		alt:          alt,
		fallbackText: fallbackText,
		fallback:     FallbackURL(opts.PlaceholderBase, fallbackText),
		current:      src,
		enlargeable:  opts.Enlargeable,
		affordance:   opts.Affordance,
		mode:         opts.Mode,
	}
	if s.affordance == "" {
		s.affordance = DefaultAffordance
	}
	if strings.TrimSpace(src) == "" {
		s.current = s.fallback
		s.onFallback = true
	}
	return s
}

// ID returns the slot identifier.
func (s *Slot) ID() string { return s.id }

// Src returns the source currently displayed or loading.
func (s *Slot) Src() string { return s.current }

// OriginalSrc returns the source the slot was created with.
func (s *Slot) OriginalSrc() string { return s.original }

// FallbackSrc returns the placeholder source used after a failure.
func (s *Slot) FallbackSrc() string { return s.fallback }

// Alt returns the alternative text.
func (s *Slot) Alt() string { return s.alt }

// State returns the load state of the current source.
func (s *Slot) State() State { return s.state }

// OnFallback reports whether the current source is the placeholder.
func (s *Slot) OnFallback() bool { return s.onFallback }

// Image returns the decoded pixels, or nil.
func (s *Slot) Image() image.Image { return s.image }

// Enlargeable reports whether the slot shows an enlarge control.
func (s *Slot) Enlargeable() bool { return s.enlargeable }

// Loaded records decoded pixels for src. Results for a source that is no
// longer current are ignored and reported as false.
func (s *Slot) Loaded(src string, img image.Image) bool {
	if src != s.current || img == nil {
		return false
	}
	s.image = img
	s.state = StateLoaded
	s.cache.valid = false
	return true
}

// Fail records a load failure for src and reports whether the source
// changed. The first failure switches to the fallback. A failure of the
// fallback marks the slot broken and never retries.
func (s *Slot) Fail(src string) bool {
	if src != s.current {
		return false
	}
	s.image = nil
	s.cache.valid = false
	if s.onFallback {
		s.state = StateBroken
		return false
	}
	s.current = s.fallback
	s.onFallback = true
	s.state = StatePending
	return true
}

// Enlarge returns the request for the enlarge control. It carries the
// original source even while the fallback is displayed.
func (s *Slot) Enlarge() (EnlargeRequest, bool) {
	if !s.enlargeable {
		return EnlargeRequest{}, false
	}
	return EnlargeRequest{Src: s.original, Alt: s.alt}, true
}

// View renders the slot into a width x height block. Enlargeable slots give
// their last row to the enlarge control. pendingLabel is shown while loading.
func (s *Slot) View(width, height int, pendingLabel string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if s.cache.valid && s.cache.width == width && s.cache.height == height && s.cache.label == pendingLabel {
		return s.cache.view
	}

	imageRows := height
	if s.enlargeable && height > 1 {
		imageRows--
	}

	var body string
	switch s.state {
	case StateLoaded:
		body = Render(s.image, width, imageRows, RenderOptions{Fit: FitCover, Mode: s.mode})
	case StateBroken:
		body = RenderPlaceholder(width, imageRows, s.fallbackText)
	default:
		label := pendingLabel
		if label == "" {
			label = s.alt
		}
		body = RenderPlaceholder(width, imageRows, label)
	}

	if imageRows < height {
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.affordanceRow(width))
	}

	s.cache = viewCache{valid: true, width: width, height: height, label: pendingLabel, view: body}
	return body
}

// AffordanceRow returns the row index of the enlarge control within a view
// of the given height, or -1 when the slot has none.
func (s *Slot) AffordanceRow(height int) int {
	if !s.enlargeable || height <= 1 {
		return -1
	}
	return height - 1
}

func (s *Slot) affordanceRow(width int) string {
	text := s.affordance
	if s.alt != "" {
		text += " " + s.alt
	}
	text = runewidth.Truncate(text, width, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, text)
}
