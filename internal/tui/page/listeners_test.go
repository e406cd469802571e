package page

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestKeyListenersNewestFirst(t *testing.T) {
	listeners := NewKeyListeners()
	esc := key.NewBinding(key.WithKeys("esc"))

	var calls []string
	listeners.Add(esc, func(tea.KeyMsg) tea.Cmd {
		calls = append(calls, "first")
		return nil
	})
	listeners.Add(esc, func(tea.KeyMsg) tea.Cmd {
		calls = append(calls, "second")
		return nil
	})

	_, handled := listeners.Dispatch(escKey())
	assert.True(t, handled)
	assert.Equal(t, []string{"second"}, calls)
}

func TestKeyListenersReleaseIsIdempotent(t *testing.T) {
	listeners := NewKeyListeners()
	esc := key.NewBinding(key.WithKeys("esc"))

	releaseA := listeners.Add(esc, nil)
	releaseB := listeners.Add(esc, nil)
	assert.Equal(t, 2, listeners.Len())

	releaseA()
	releaseA()
	assert.Equal(t, 1, listeners.Len())

	releaseB()
	assert.Equal(t, 0, listeners.Len())

	_, handled := listeners.Dispatch(escKey())
	assert.False(t, handled)
}

func TestKeyListenersIgnoreOtherKeys(t *testing.T) {
	listeners := NewKeyListeners()
	listeners.Add(key.NewBinding(key.WithKeys("esc")), func(tea.KeyMsg) tea.Cmd {
		t.Fatal("handler must not run")
		return nil
	})

	_, handled := listeners.Dispatch(runeKey("x"))
	assert.False(t, handled)
}

func TestKeyListenersHandlerMayRelease(t *testing.T) {
	listeners := NewKeyListeners()
	esc := key.NewBinding(key.WithKeys("esc"))

	var release func()
	release = listeners.Add(esc, func(tea.KeyMsg) tea.Cmd {
		release()
		return nil
	})

	_, handled := listeners.Dispatch(escKey())
	assert.True(t, handled)
	assert.Equal(t, 0, listeners.Len())

	_, handled = listeners.Dispatch(escKey())
	assert.False(t, handled)
}
