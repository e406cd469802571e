package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

// HeroSlotID identifies the hero image slot.
const HeroSlotID = "hero"

// Hero stages, in the order they appear.
const (
	heroHidden = iota
	heroTitle
	heroSubtitle
	heroCTA
)

// heroBlock is the banner at the top of the page: title, subtitle, call to
// action and a wide image. Parts that have not appeared yet keep their rows.
type heroBlock struct {
	hero        content.Hero
	slot        *media.Slot
	cta         *components.Button
	imageHeight int

	handle    *ui.Handle
	ctaRect   visibility.Rect
	imageRect visibility.Rect
}

func newHeroBlock(hero content.Hero, opts Options) *heroBlock {
	h := &heroBlock{
		hero:        hero,
		imageHeight: opts.HeroImageHeight,
		handle:      ui.NewHandle("hero"),
		slot: media.NewSlot(HeroSlotID, hero.Image, hero.Alt, hero.FallbackText(), media.SlotOptions{
			PlaceholderBase: opts.PlaceholderBase,
			Enlargeable:     true,
			Mode:            opts.Mode,
		}),
	}
	if hero.CTA.Label != "" {
		h.cta = components.NewButton(hero.CTA.Label).
			AsChild(components.NewLink(" "+hero.CTA.Label+" ", hero.CTA.Target)).
			WithVariant(components.VariantDefault)
	}
	return h
}

// Anchor returns the section the call to action points at, if any.
func (h *heroBlock) Anchor() string {
	if h.cta == nil {
		return ""
	}
	return components.NewLink("", h.hero.CTA.Target).Anchor()
}

// Enlarge forwards the hero slot's request.
func (h *heroBlock) Enlarge() (*media.EnlargeRequest, bool) {
	req, ok := h.slot.Enlarge()
	if !ok {
		return nil, false
	}
	return &req, true
}

func (h *heroBlock) View(ctx components.RenderContext, stage int) string {
	width := max(ctx.InnerWidth(), 1)
	var rows []string

	title := components.NewHeader(h.hero.Title).WithAlign(lipgloss.Center).ViewWithContext(ctx)
	rows = append(rows, hideUntil(title, width, stage >= heroTitle)...)

	if h.hero.Subtitle != "" {
		subtitle := components.NewText(h.hero.Subtitle).
			WithAppliers(components.Typography(components.TypographyVariantSubtitle)).
			WithAlign(lipgloss.Center).
			ViewWithContext(ctx)
		rows = append(rows, hideUntil(subtitle, width, stage >= heroSubtitle)...)
	}

	h.ctaRect = visibility.Rect{}
	if h.cta != nil {
		rows = append(rows, strings.Repeat(" ", width))
		button := h.cta.ViewWithContext(ctx)
		buttonWidth := lipgloss.Width(button)
		left := max((width-buttonWidth)/2, 0)
		line := strings.Repeat(" ", left) + button + strings.Repeat(" ", max(width-left-buttonWidth, 0))
		h.ctaRect = visibility.Rect{X: left, Y: len(rows), Width: buttonWidth, Height: 1}
		rows = append(rows, hideUntil(line, width, stage >= heroCTA)...)
	}

	rows = append(rows, strings.Repeat(" ", width))
	h.imageRect = visibility.Rect{X: 0, Y: len(rows), Width: width, Height: h.imageHeight}
	image := slotView{slot: h.slot, height: h.imageHeight}.ViewWithContext(ctx)
	rows = append(rows, strings.Split(image, "\n")...)

	out := strings.Join(rows, "\n")
	h.handle.Measure(out)
	return out
}

// hideUntil returns view's rows, blanked while shown is false.
func hideUntil(view string, width int, shown bool) []string {
	lines := strings.Split(view, "\n")
	if shown {
		return lines
	}
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return lines
}
