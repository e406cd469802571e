package components

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reveal/internal/ui"
	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

func TestButtonSizes(t *testing.T) {
	tests := []struct {
		name   string
		button *Button
		width  int
		height int
	}{
		{"default", NewButton("Go"), 6, 1},
		{"small", NewButton("Go").WithSize(SizeSmall), 4, 1},
		{"large", NewButton("Go").WithSize(SizeLarge), 10, 3},
		{"icon", IconButton("☰", "Menu"), 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tt.button.View()
			assert.Equal(t, tt.width, lipgloss.Width(view))
			assert.Equal(t, tt.height, lipgloss.Height(view))
		})
	}
}

func TestButtonIconWithoutGlyphUsesFirstRune(t *testing.T) {
	view := ansi.Strip(NewButton("Menu").WithSize(SizeIcon).View())
	assert.Equal(t, " M ", view)
}

func TestButtonUnknownVariantIsReported(t *testing.T) {
	var reported []error
	ctx := DefaultContext().WithReport(func(err error) { reported = append(reported, err) })

	fancy := NewButton("Go").WithVariant("fancy").ViewWithContext(ctx)
	plain := NewButton("Go").ViewWithContext(ctx)

	assert.Equal(t, plain, fancy)
	require.Len(t, reported, 1)
	var cfgErr *errors.ConfigurationError
	assert.True(t, stderrors.As(reported[0], &cfgErr))
}

func TestButtonPassThroughRendersChild(t *testing.T) {
	link := NewLink("Lihat Masalahnya", "#permasalahan")
	button := NewButton("ignored").WithSize(SizeLarge).AsChild(link)

	view := ansi.Strip(button.View())
	assert.Equal(t, TargetPassThrough, button.Target())
	assert.Equal(t, "Lihat Masalahnya", view)
	assert.Equal(t, "#permasalahan", button.Href())
	assert.Equal(t, "permasalahan", link.Anchor())
}

func TestButtonMeasuresIntoHandle(t *testing.T) {
	h := ui.NewHandle("nav")
	NewButton("Dampak").WithVariant(VariantGhost).WithHandle(h).View()

	w, height := h.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 1, height)
}

func TestLinkAnchor(t *testing.T) {
	assert.Equal(t, "", NewLink("x", "https://example.com").Anchor())
	assert.Equal(t, "ajakan", NewLink("x", "#ajakan").Anchor())
}

func TestCardLayout(t *testing.T) {
	h := ui.NewHandle("card")
	card := NewCard(
		NewCardHeader(NewCardTitle("≋", "Latar")),
		NewCardContent(NewText("isi")),
	).WithWidth(30).WithHandle(h)

	view := card.View()
	w, height := h.Size()
	assert.Equal(t, 30, w)
	// border, padding, title, gap, body, padding, border
	assert.Equal(t, 7, height)

	plain := ansi.Strip(view)
	assert.True(t, strings.HasPrefix(plain, "╭"))
	assert.Contains(t, plain, "Latar")
	assert.Contains(t, plain, "isi")
}

func TestCardFillsContextWidth(t *testing.T) {
	ctx := DefaultContext()
	ctx.ParentWidth = 44
	view := NewCard(NewText("body")).ViewWithContext(ctx)
	for _, line := range strings.Split(view, "\n") {
		assert.Equal(t, 44, lipgloss.Width(line))
	}
}

func TestCardTitleWithoutIcon(t *testing.T) {
	assert.Equal(t, "Judul", ansi.Strip(NewCardTitle("", "Judul").View()))
}

func TestPanelFixedHeight(t *testing.T) {
	view := NewPanel(NewText("a")).WithWidth(20).WithHeight(10).View()
	assert.Equal(t, 10, lipgloss.Height(view))
	assert.Equal(t, 20, lipgloss.Width(view))
}

func TestPanelHeaderAddsDivider(t *testing.T) {
	view := ansi.Strip(NewPanel(NewText("item")).WithTitle("Menu").WithWidth(24).View())
	assert.Contains(t, view, "Menu")
	assert.Contains(t, view, "────")
}

func TestStackGap(t *testing.T) {
	view := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	assert.Equal(t, 3, lipgloss.Height(view))

	view = VStack(NewText("a"), NewText(""), NewText("b")).WithGap(2).View()
	assert.Equal(t, 4, lipgloss.Height(view), "empty children leave no gap")
}

func TestStackAlign(t *testing.T) {
	view := VStack(NewText("ab").WithNoWrap(), NewText("abcd").WithNoWrap()).
		WithAlign(lipgloss.Center).
		View()
	assert.Equal(t, " ab \nabcd", view)
}

func TestTextWrapsToContextWidth(t *testing.T) {
	ctx := DefaultContext()
	ctx.ParentWidth = 5
	view := NewText("satu dua tiga").ViewWithContext(ctx)
	assert.Equal(t, 3, lipgloss.Height(view))
}

func TestDividerWidth(t *testing.T) {
	assert.Equal(t, 40, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 8, lipgloss.Width(NewDivider().WithWidth(8).View()))

	ctx := DefaultContext().WithConstraints(WithMaxWidth(12))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(ctx)))
}

func TestHeaderSubtitle(t *testing.T) {
	view := ansi.Strip(NewHeader("Tantangan").WithSubtitle("Memahami masalah").View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Tantangan")
	assert.Contains(t, lines[1], "Memahami masalah")
}

func TestIcons(t *testing.T) {
	icons := DefaultIcons()
	assert.Equal(t, "≋", icons.Icon("wind"))
	assert.Equal(t, "♥", icons.Icon("heart-handshake"))
	assert.Equal(t, FallbackIcon, icons.Icon("unknown"))
}
