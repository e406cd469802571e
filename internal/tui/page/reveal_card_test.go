package page

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
	"github.com/alexisbeaulieu97/reveal/internal/visibility"
)

func testSection() content.Section {
	return content.Section{
		ID:    "sampah",
		Title: "Sampah Plastik",
		Body:  "Sampah plastik menumpuk di pantai.",
		Image: "https://images.example.com/sampah.jpg",
		Alt:   "Sampah di pantai",
		Icon:  "trash-2",
	}
}

func testCard(t *testing.T, animate bool) (*RevealCard, *visibility.Observer) {
	t.Helper()
	observer := visibility.NewObserver()
	body := markdownBody{text: testSection().Body, renderer: newBodyRenderer(false, "")}
	card := NewRevealCard(testSection(), body, observer, CardOptions{
		Threshold: visibility.DefaultThreshold,
		Mode:      media.ModeASCII,
		Animate:   animate,
	})
	return card, observer
}

func cardContext(width int) components.RenderContext {
	ctx := components.DefaultContext().WithConstraints(components.WithMaxWidth(width))
	ctx.ParentWidth = width
	return ctx
}

func placeCard(card *RevealCard, width int) string {
	view := card.View(cardContext(width), false)
	card.Region().Attach(0, 100)
	return view
}

func TestRevealCardStartsBlank(t *testing.T) {
	card, observer := testCard(t, true)
	view := placeCard(card, 40)

	assert.False(t, card.Seen())
	assert.Equal(t, 0.0, card.Progress())
	assert.Empty(t, strings.TrimSpace(view))
	assert.Equal(t, 1, observer.Len())

	w, h := card.Region().Size()
	assert.Equal(t, 40, w)
	assert.Greater(t, h, revealRise)
}

func TestRevealCardUnattachedNeverSeen(t *testing.T) {
	card, observer := testCard(t, true)
	card.View(cardContext(40), false)

	observer.Notify(visibility.Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	assert.False(t, card.Seen())
	assert.True(t, card.Tracking())
}

func TestRevealCardRevealsOnce(t *testing.T) {
	card, observer := testCard(t, true)
	placeCard(card, 40)

	observer.Notify(visibility.Rect{X: 0, Y: 0, Width: 80, Height: 24})
	assert.False(t, card.Seen(), "region is below the view")

	observer.Notify(visibility.Rect{X: 0, Y: 100, Width: 80, Height: 24})
	require.True(t, card.Seen())
	assert.False(t, card.Tracking(), "tracker lets go once seen")
	assert.Equal(t, 0, observer.Len())
	assert.True(t, card.Animating())

	for i := 0; i < 1000 && card.Advance(); i++ {
	}
	assert.Equal(t, 1.0, card.Progress())
	assert.False(t, card.Animating())

	observer.Notify(visibility.Rect{X: 0, Y: 0, Width: 80, Height: 24})
	assert.True(t, card.Seen())
	assert.Equal(t, 1.0, card.Progress())
}

func TestRevealCardWithoutAnimationJumpsToDone(t *testing.T) {
	card, observer := testCard(t, false)
	placeCard(card, 40)

	observer.Notify(visibility.Rect{X: 0, Y: 100, Width: 80, Height: 24})
	assert.Equal(t, 1.0, card.Progress())
	assert.False(t, card.Advance())
}

func TestRevealCardProgressIsMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		observer := visibility.NewObserver()
		card := NewRevealCard(testSection(), components.NewText("body"), observer, CardOptions{Animate: true})
		card.View(cardContext(40), false)
		card.Region().Attach(0, 0)
		observer.Notify(visibility.Rect{Width: 80, Height: 200})

		frames := rapid.IntRange(1, 200).Draw(rt, "frames")
		last := card.Progress()
		for range frames {
			card.Advance()
			if card.Progress() < last {
				rt.Fatalf("progress went back from %v to %v", last, card.Progress())
			}
			last = card.Progress()
		}
	})
}

func TestRevealCardRegionHeightIsStable(t *testing.T) {
	card, observer := testCard(t, true)
	first := placeCard(card, 40)
	height := lipgloss.Height(first)

	observer.Notify(visibility.Rect{X: 0, Y: 100, Width: 80, Height: 24})
	for card.Advance() {
		view := card.View(cardContext(40), false)
		assert.Equal(t, height, lipgloss.Height(view))
	}

	final := ansi.Strip(card.View(cardContext(40), false))
	lines := strings.Split(final, "\n")
	assert.Equal(t, height, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "╭"), "settled card sits at the top of its region")
	assert.Contains(t, final, "Sampah Plastik")
	assert.Contains(t, final, "menumpuk")
}

func TestRevealCardImageRect(t *testing.T) {
	card, _ := testCard(t, false)
	card.Settle()
	view := ansi.Strip(card.View(cardContext(40), false))
	lines := strings.Split(view, "\n")

	rect := card.ImageRect()
	require.Less(t, rect.Y, len(lines))
	row := []rune(lines[rect.Y])
	require.Less(t, rect.X, len(row))
	assert.Equal(t, '╭', row[rect.X], "image placeholder frame starts at the image rect")
	assert.Equal(t, 10, rect.Height)
}

func TestRevealCardEnlargeForwardsOriginal(t *testing.T) {
	card, _ := testCard(t, false)
	src := card.Slot().Src()
	card.Slot().Fail(src)
	require.True(t, card.Slot().OnFallback())

	req, ok := card.Enlarge()
	require.True(t, ok)
	assert.Equal(t, &media.EnlargeRequest{Src: testSection().Image, Alt: testSection().Alt}, req)
}

func TestRevealCardCloseReleasesObserver(t *testing.T) {
	card, observer := testCard(t, true)
	card.Close()
	card.Close()
	assert.Equal(t, 0, observer.Len())
	assert.False(t, card.Seen())
}
