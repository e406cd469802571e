package media

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func heroSlot() *Slot {
	return NewSlot("hero", "https://images.pexels.com/photos/457882/pexels-photo-457882.jpeg",
		"Pemandangan pantai Bali", "Pantai Bali", SlotOptions{Enlargeable: true})
}

func TestSlotFailSwitchesToFallbackOnce(t *testing.T) {
	slot := heroSlot()
	original := slot.Src()

	require.True(t, slot.Fail(original))
	assert.Equal(t, "https://placehold.co/800x600/E0E0E0/707070?text=Pantai%20Bali", slot.Src())
	assert.True(t, slot.OnFallback())
	assert.Equal(t, StatePending, slot.State())

	// A late error for the original source changes nothing.
	assert.False(t, slot.Fail(original))
	assert.Equal(t, slot.FallbackSrc(), slot.Src())
}

func TestSlotFallbackFailureDoesNotLoop(t *testing.T) {
	slot := heroSlot()
	slot.Fail(slot.Src())

	assert.False(t, slot.Fail(slot.Src()))
	assert.Equal(t, StateBroken, slot.State())
	assert.Equal(t, slot.FallbackSrc(), slot.Src())

	assert.False(t, slot.Fail(slot.Src()))
	assert.Equal(t, StateBroken, slot.State())
}

func TestSlotIgnoresStaleLoads(t *testing.T) {
	slot := heroSlot()
	original := slot.Src()
	slot.Fail(original)

	assert.False(t, slot.Loaded(original, solid(2, 2, color.White)))
	assert.Equal(t, StatePending, slot.State())

	assert.True(t, slot.Loaded(slot.FallbackSrc(), solid(2, 2, color.White)))
	assert.Equal(t, StateLoaded, slot.State())
}

func TestSlotEmptySourceStartsOnFallback(t *testing.T) {
	slot := NewSlot("s", "  ", "", "Kosong", SlotOptions{})
	assert.True(t, slot.OnFallback())
	assert.Equal(t, FallbackURL("", "Kosong"), slot.Src())
}

func TestSlotEnlargeUsesOriginalSource(t *testing.T) {
	slot := heroSlot()
	original := slot.Src()
	slot.Fail(original)

	req, ok := slot.Enlarge()
	require.True(t, ok)
	assert.Equal(t, EnlargeRequest{Src: original, Alt: "Pemandangan pantai Bali"}, req)

	_, ok = NewSlot("x", "a.png", "a", "a", SlotOptions{}).Enlarge()
	assert.False(t, ok)
}

func TestSlotViewDimensions(t *testing.T) {
	slot := heroSlot()

	view := slot.View(30, 8, "Memuat…")
	assert.Equal(t, 8, lipgloss.Height(view))
	assert.Equal(t, 30, lipgloss.Width(view))
	assert.Equal(t, 7, slot.AffordanceRow(8))

	lines := strings.Split(ansi.Strip(view), "\n")
	assert.Contains(t, lines[len(lines)-1], DefaultAffordance)
	assert.Contains(t, ansi.Strip(view), "Memuat")

	slot.Loaded(slot.Src(), solid(40, 20, color.RGBA{R: 200, A: 255}))
	view = slot.View(30, 8, "")
	assert.Equal(t, 8, lipgloss.Height(view))
	assert.Equal(t, 30, lipgloss.Width(view))
}

func TestSlotWithoutAffordanceUsesFullHeight(t *testing.T) {
	slot := NewSlot("s", "a.png", "alt", "alt", SlotOptions{})
	assert.Equal(t, -1, slot.AffordanceRow(5))
	assert.NotContains(t, ansi.Strip(slot.View(20, 5, "")), DefaultAffordance)
}

func TestSlotViewIsCached(t *testing.T) {
	slot := heroSlot()
	first := slot.View(20, 6, "")
	assert.Equal(t, first, slot.View(20, 6, ""))

	slot.Fail(slot.Src())
	slot.Fail(slot.Src())
	assert.Contains(t, ansi.Strip(slot.View(20, 6, "")), "Pantai Bali")
}
