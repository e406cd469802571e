package page

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

// ViewerSlotID identifies the slot the viewer loads its target into.
const ViewerSlotID = "viewer"

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the clipboard of the host.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// FullscreenViewer shows one image over the whole page. It is hidden or shown
// with a single target; showing a new target replaces the old one.
//
// While shown it holds exactly one escape listener, released on hide or
// unmount.
type FullscreenViewer struct {
	target          *media.EnlargeRequest
	slot            *media.Slot
	placeholderBase string
	mode            media.Mode
	clipboard       Clipboard

	keys      keyMap
	listeners *KeyListeners
	release   func()
}

// ViewerGeometry locates the viewer's parts on screen.
type ViewerGeometry struct {
	Close   visibility.Rect
	Image   visibility.Rect
	Caption visibility.Rect
}

// NewFullscreenViewer creates a hidden viewer.
func NewFullscreenViewer(listeners *KeyListeners, placeholderBase string, mode media.Mode, cb Clipboard) *FullscreenViewer {
	if cb == nil {
		cb = SystemClipboard()
	}
	return &FullscreenViewer{
		placeholderBase: placeholderBase,
		mode:            mode,
		clipboard:       cb,
		keys:            defaultKeyMap(),
		listeners:       listeners,
	}
}

// Shown reports whether the viewer is up.
func (v *FullscreenViewer) Shown() bool {
	return v.target != nil
}

// Target returns the current target.
func (v *FullscreenViewer) Target() (media.EnlargeRequest, bool) {
	if v.target == nil {
		return media.EnlargeRequest{}, false
	}
	return *v.target, true
}

// Slot returns the slot holding the target image, or nil while hidden.
func (v *FullscreenViewer) Slot() *media.Slot {
	return v.slot
}

// Show displays target, replacing any current one. A nil target is ignored.
func (v *FullscreenViewer) Show(target *media.EnlargeRequest) bool {
	if target == nil {
		return false
	}
	copied := *target
	v.target = &copied
	v.slot = media.NewSlot(ViewerSlotID, copied.Src, copied.Alt, copied.Alt, media.SlotOptions{
		PlaceholderBase: v.placeholderBase,
		Mode:            v.mode,
	})

	if v.release == nil {
		v.release = v.listeners.Add(v.keys.Close, func(tea.KeyMsg) tea.Cmd {
			v.Hide()
			return nil
		})
	}
	return true
}

// Hide closes the viewer. It does nothing while hidden.
func (v *FullscreenViewer) Hide() bool {
	if v.target == nil {
		return false
	}
	v.target = nil
	v.slot = nil
	v.releaseListener()
	return true
}

// Unmount hides the viewer and releases its listener.
func (v *FullscreenViewer) Unmount() {
	v.target = nil
	v.slot = nil
	v.releaseListener()
}

func (v *FullscreenViewer) releaseListener() {
	if v.release == nil {
		return
	}
	v.release()
	v.release = nil
}

// Copy writes the target's source to the clipboard and returns it.
func (v *FullscreenViewer) Copy() (string, error) {
	if v.target == nil {
		return "", nil
	}
	if err := v.clipboard.WriteAll(v.target.Src); err != nil {
		return "", err
	}
	return v.target.Src, nil
}

// Geometry lays the viewer out on a screen of the given size. The caption
// rect is empty when the target has no alt text.
func (v *FullscreenViewer) Geometry(width, height int) ViewerGeometry {
	var g ViewerGeometry
	closeWidth := runewidth.StringWidth(closeLabel)
	g.Close = visibility.Rect{X: max(width-closeWidth-1, 0), Y: 0, Width: closeWidth, Height: 1}

	imageHeight := height - 2
	if v.target != nil && v.target.Alt != "" {
		g.Caption = visibility.Rect{X: 0, Y: height - 1, Width: width, Height: 1}
		imageHeight--
	}
	g.Image = visibility.Rect{X: 2, Y: 1, Width: max(width-4, 1), Height: max(imageHeight, 1)}
	return g
}

const closeLabel = "✕ esc"

// Click handles a mouse press while shown. Clicks on the caption do nothing;
// the close control, the image and the backdrop all hide the viewer.
func (v *FullscreenViewer) Click(x, y, width, height int) bool {
	if v.target == nil {
		return false
	}
	g := v.Geometry(width, height)
	if g.Caption.Contains(x, y) {
		return true
	}
	v.Hide()
	return true
}

// Overlay draws the viewer over a dimmed background.
func (v *FullscreenViewer) Overlay(ctx components.RenderContext, background string, width, height int) string {
	if v.target == nil {
		return background
	}
	g := v.Geometry(width, height)
	out := overlayAt(dim(background), nil, width, height, 0, 0)

	image := v.slot.View(g.Image.Width, g.Image.Height, v.target.Alt)
	out = overlayAt(out, strings.Split(image, "\n"), width, height, g.Image.X, g.Image.Y)

	closeStyle := lipgloss.NewStyle().
		Foreground(ctx.Theme.Palette.Destructive.Base).
		Bold(true)
	out = overlayAt(out, []string{closeStyle.Render(closeLabel)}, width, height, g.Close.X, g.Close.Y)

	if !g.Caption.Empty() {
		caption := runewidth.Truncate(v.target.Alt, width-2, "…")
		caption = components.TypographyStyle(ctx.Theme, components.TypographyVariantCaption).
			Width(width).
			Align(lipgloss.Center).
			Render(caption)
		out = overlayAt(out, []string{caption}, width, height, 0, g.Caption.Y)
	}
	return out
}
