package page

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

const (
	// revealRise is the number of rows a card travels while it reveals.
	revealRise = 2
	// revealSnap is the progress at which the reveal is treated as done.
	revealSnap = 0.99
	// revealFaint is the progress below which a card is drawn faint.
	revealFaint = 0.6
)

// CardOptions configures a RevealCard.
type CardOptions struct {
	Threshold       float64
	PlaceholderBase string
	Mode            media.Mode
	Animate         bool
	Icons           components.IconProvider
	ImageHeight     int
}

// RevealCard is one content section. It stays blank until its region is
// seen, then eases in once: it rises into place and goes from faint to
// normal. The transition never runs backwards.
type RevealCard struct {
	section content.Section
	body    ui.Renderable
	icons   components.IconProvider
	slot    *media.Slot

	region  *ui.Handle
	header  *ui.Handle
	tracker *visibility.Tracker

	animate  bool
	progress float64
	velocity float64
	spring   harmonica.Spring

	imageHeight int
	imageRect   visibility.Rect
}

// NewRevealCard creates a card for section and starts tracking its region
// with observer. body renders the section text.
func NewRevealCard(section content.Section, body ui.Renderable, observer *visibility.Observer, opts CardOptions) *RevealCard {
	if opts.Icons == nil {
		opts.Icons = components.DefaultIcons()
	}
	if opts.ImageHeight <= 0 {
		opts.ImageHeight = 10
	}

	r := &RevealCard{
		section:     section,
		body:        body,
		icons:       opts.Icons,
		region:      ui.NewHandle(section.ID),
		header:      ui.NewHandle(section.ID + "-header"),
		animate:     opts.Animate,
		spring:      harmonica.NewSpring(harmonica.FPS(frameRate), 5.0, 1.0),
		imageHeight: opts.ImageHeight,
		slot: media.NewSlot(section.ID, section.Image, section.Alt, section.FallbackText(), media.SlotOptions{
			PlaceholderBase: opts.PlaceholderBase,
			Enlargeable:     true,
			Mode:            opts.Mode,
		}),
	}
	r.tracker = visibility.New(observer, r.region, visibility.Options{
		Threshold: opts.Threshold,
		OnSeen:    r.onSeen,
	})
	return r
}

func (r *RevealCard) onSeen() {
	if !r.animate {
		r.progress = 1
	}
}

// ID returns the section id, which is also the card's anchor.
func (r *RevealCard) ID() string { return r.section.ID }

// Section returns the content the card shows.
func (r *RevealCard) Section() content.Section { return r.section }

// Region returns the handle of the card's tracked region.
func (r *RevealCard) Region() *ui.Handle { return r.region }

// Slot returns the card's image slot.
func (r *RevealCard) Slot() *media.Slot { return r.slot }

// Seen reports whether the region has been seen.
func (r *RevealCard) Seen() bool { return r.tracker.Seen() }

// Progress returns the reveal progress in [0,1].
func (r *RevealCard) Progress() float64 { return r.progress }

// Tracking reports whether the card still observes its region.
func (r *RevealCard) Tracking() bool { return r.tracker.Active() }

// Animating reports whether the card is seen but not fully revealed.
func (r *RevealCard) Animating() bool {
	return r.tracker.Seen() && r.progress < 1
}

// Advance moves the reveal one frame forward and reports whether it is still
// running. Progress never decreases.
func (r *RevealCard) Advance() bool {
	if !r.Animating() {
		return false
	}
	pos, vel := r.spring.Update(r.progress, r.velocity, 1)
	r.velocity = vel
	r.progress = max(r.progress, min(pos, 1))
	if r.progress >= revealSnap {
		r.progress, r.velocity = 1, 0
	}
	return r.progress < 1
}

// Settle finishes the reveal immediately, whether or not the card was seen.
func (r *RevealCard) Settle() {
	r.progress, r.velocity = 1, 0
}

// Close stops observing the region.
func (r *RevealCard) Close() {
	r.tracker.Close()
}

// Enlarge forwards the image slot's enlarge request unchanged.
func (r *RevealCard) Enlarge() (*media.EnlargeRequest, bool) {
	req, ok := r.slot.Enlarge()
	if !ok {
		return nil, false
	}
	return &req, true
}

// ImageRect returns where the image sits inside the region as of the last
// View.
func (r *RevealCard) ImageRect() visibility.Rect {
	return r.imageRect
}

// View renders the region: the card plus the rows it rises through. The
// region's size does not change while it reveals.
func (r *RevealCard) View(ctx components.RenderContext, focused bool) string {
	title := components.NewCardTitle(r.icons.Icon(r.section.Icon), r.section.Title)
	header := components.NewCardHeader(title).WithHandle(r.header)
	image := slotView{slot: r.slot, height: r.imageHeight}
	body := components.NewCardContent(r.body)

	card := components.NewCard(header, image, body).WithFocused(focused)
	view := card.ViewWithContext(ctx)
	width := lipgloss.Width(view)

	top := int(math.Round(revealRise * (1 - r.progress)))
	r.imageRect = r.locateImage(ctx, width, top)

	lines := strings.Split(view, "\n")
	switch {
	case r.progress <= 0:
		blank := strings.Repeat(" ", width)
		for i := range lines {
			lines[i] = blank
		}
	case r.progress < revealFaint:
		faint := lipgloss.NewStyle().Faint(true)
		for i, line := range lines {
			lines[i] = faint.Render(line)
		}
	}

	pad := strings.Repeat(" ", width)
	region := make([]string, 0, len(lines)+revealRise)
	for range top {
		region = append(region, pad)
	}
	region = append(region, lines...)
	for range revealRise - top {
		region = append(region, pad)
	}

	out := strings.Join(region, "\n")
	r.region.Measure(out)
	return out
}

func (r *RevealCard) locateImage(ctx components.RenderContext, width, top int) visibility.Rect {
	desc, _ := components.NewResolver(ctx.Theme).ResolveOrDefault(components.KindCard, components.VariantDefault, components.SizeDefault)
	border := 0
	if desc.Bordered {
		border = 1
	}
	_, headerHeight := r.header.Size()
	return visibility.Rect{
		X:      border + desc.PaddingX,
		Y:      top + border + desc.PaddingY + headerHeight + 1,
		Width:  max(width-2*(border+desc.PaddingX), 1),
		Height: r.imageHeight,
	}
}

// slotView adapts an image slot to the component tree.
type slotView struct {
	slot   *media.Slot
	height int
	label  string
}

func (s slotView) View() string {
	return s.slot.View(defaultImageWidth, s.height, s.label)
}

func (s slotView) ViewWithContext(ctx components.RenderContext) string {
	width := ctx.InnerWidth()
	if width <= 0 {
		width = defaultImageWidth
	}
	return s.slot.View(width, s.height, s.label)
}

const defaultImageWidth = 40
