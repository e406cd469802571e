package page

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press matched by a listener.
type KeyHandler func(msg tea.KeyMsg) tea.Cmd

type listener struct {
	id      int
	binding key.Binding
	handler KeyHandler
}

// KeyListeners is the page-scoped registry of key listeners. Overlays add a
// listener while they are active and release it when they deactivate.
// The most recently added listener sees a key first.
type KeyListeners struct {
	nextID  int
	entries []listener
}

// NewKeyListeners creates an empty registry.
func NewKeyListeners() *KeyListeners {
	return &KeyListeners{}
}

// Add registers handler for keys matching binding. The returned release
// function removes it; calling release more than once does nothing.
func (l *KeyListeners) Add(binding key.Binding, handler KeyHandler) (release func()) {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listener{id: id, binding: binding, handler: handler})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.remove(id)
	}
}

func (l *KeyListeners) remove(id int) {
	for i, entry := range l.entries {
		if entry.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Dispatch hands msg to the newest matching listener and reports whether one
// handled it. Handlers may release listeners while running.
func (l *KeyListeners) Dispatch(msg tea.KeyMsg) (tea.Cmd, bool) {
	snapshot := make([]listener, len(l.entries))
	copy(snapshot, l.entries)

	for i := len(snapshot) - 1; i >= 0; i-- {
		entry := snapshot[i]
		if !key.Matches(msg, entry.binding) {
			continue
		}
		if entry.handler == nil {
			return nil, true
		}
		return entry.handler(msg), true
	}
	return nil, false
}

// Len returns the number of registered listeners.
func (l *KeyListeners) Len() int {
	return len(l.entries)
}
