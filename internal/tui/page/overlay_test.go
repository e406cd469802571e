package page

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

func testMenu(animate bool) (*OverlayPanel, *KeyListeners) {
	listeners := NewKeyListeners()
	items := []MenuItem{
		{ID: "polusi-udara", Label: "Polusi Udara", Enabled: true},
		{ID: "sampah", Label: "Sampah", Enabled: true},
		{ID: "hilang", Label: "Hilang", Enabled: false},
	}
	return NewOverlayPanel("Menu", items, listeners, animate), listeners
}

func settle(p *OverlayPanel) {
	for i := 0; i < 1000 && p.Advance(); i++ {
	}
}

func TestOverlayOpenIsIdempotent(t *testing.T) {
	panel, listeners := testMenu(false)

	assert.True(t, panel.Open())
	held := listeners.Len()
	assert.False(t, panel.Open())
	assert.True(t, panel.IsOpen())
	assert.Equal(t, held, listeners.Len())
}

func TestOverlayCloseWhenClosedIsNoop(t *testing.T) {
	panel, listeners := testMenu(false)

	assert.False(t, panel.Close())
	assert.False(t, panel.IsOpen())
	assert.Equal(t, 0, listeners.Len())
}

func TestOverlayReleasesListenersOnClose(t *testing.T) {
	panel, listeners := testMenu(false)

	panel.Open()
	assert.Positive(t, listeners.Len())
	panel.Close()
	assert.Equal(t, 0, listeners.Len())

	panel.Open()
	panel.Unmount()
	assert.Equal(t, 0, listeners.Len())
	assert.False(t, panel.Visible())
}

func TestOverlaySelect(t *testing.T) {
	panel, _ := testMenu(false)

	panel.Open()
	id, ok := panel.Select("sampah")
	assert.True(t, ok)
	assert.Equal(t, "sampah", id)
	assert.False(t, panel.IsOpen())

	panel.Open()
	_, ok = panel.Select("hilang")
	assert.False(t, ok, "disabled items only close")
	assert.False(t, panel.IsOpen())

	_, ok = panel.Select("sampah")
	assert.False(t, ok, "a closed panel selects nothing")
}

func TestOverlayKeys(t *testing.T) {
	panel, listeners := testMenu(false)
	panel.Open()

	_, handled := listeners.Dispatch(tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, handled)
	assert.Equal(t, 1, panel.Cursor())

	cmd, handled := listeners.Dispatch(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{ID: "sampah"}, cmd())
	assert.False(t, panel.IsOpen())

	panel.Open()
	_, handled = listeners.Dispatch(escKey())
	assert.True(t, handled)
	assert.False(t, panel.IsOpen())

	_, handled = listeners.Dispatch(escKey())
	assert.False(t, handled, "a closed panel never consumes keys")
}

func TestOverlaySlidingOutIsNotInteractive(t *testing.T) {
	panel, _ := testMenu(true)

	panel.Open()
	settle(panel)
	assert.True(t, panel.HitTest(79, 5, 80, 24))

	panel.Close()
	panel.Advance()
	assert.True(t, panel.Visible(), "still sliding out")
	assert.False(t, panel.Interactive())
	assert.False(t, panel.HitTest(79, 5, 80, 24))

	cmd, handled := panel.Click(79, 5, 80, 24)
	assert.Nil(t, cmd)
	assert.False(t, handled)

	settle(panel)
	assert.False(t, panel.Visible())
}

func TestOverlaySlideMovesOneWay(t *testing.T) {
	panel, _ := testMenu(true)
	panel.Open()

	last := panel.Left(80)
	for i := 0; i < 1000 && panel.Advance(); i++ {
		left := panel.Left(80)
		assert.LessOrEqual(t, left, last)
		last = left
	}
	assert.Equal(t, 80-panel.Width(80), panel.Left(80))
}

func TestOverlayWidth(t *testing.T) {
	panel, _ := testMenu(false)
	assert.Equal(t, 45, panel.Width(60))
	assert.Equal(t, menuMaxWidth, panel.Width(200))
}

func TestOverlayClicks(t *testing.T) {
	panel, _ := testMenu(false)
	ctx := components.DefaultContext()
	panel.Open()
	panel.View(ctx, panel.Width(80), 24)

	left := panel.Left(80)
	cmd, handled := panel.Click(left+3, panel.itemsTop, 80, 24)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{ID: "polusi-udara"}, cmd())
	assert.False(t, panel.IsOpen())

	panel.Open()
	cmd, handled = panel.Click(2, 2, 80, 24)
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, panel.IsOpen(), "backdrop click closes")
}

func TestOverlayDrawsOverBackground(t *testing.T) {
	panel, _ := testMenu(false)
	ctx := components.DefaultContext()
	bg := strings.Join(fitLines("", 80, 24), "\n")

	assert.Equal(t, bg, panel.Overlay(ctx, bg, 80, 24), "closed panel draws nothing")

	panel.Open()
	out := panel.Overlay(ctx, bg, 80, 24)
	assert.Contains(t, out, "Polusi Udara")
	assert.Contains(t, out, "Menu")
}
