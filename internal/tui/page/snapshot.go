package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
)

// Snapshot renders the whole page once, without a terminal: every section
// revealed, images loaded synchronously, no overlays. It is used when output
// is not interactive.
func Snapshot(ctx context.Context, doc *content.Document, opts Options, width int) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("snapshot: no document")
	}
	opts.Animate = false
	m := New(doc, opts)
	defer m.Unmount()
	m.interactive = false

	for _, slot := range m.slots() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		m.loadNow(ctx, slot)
	}
	for _, card := range m.cards {
		card.Settle()
	}

	m.resize(width, 1)
	layout := m.buildLayout(m.width)
	out := layout.navbar + "\n" + layout.content
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// loadNow loads a slot in place, falling back once on failure.
func (m *Model) loadNow(ctx context.Context, slot *media.Slot) {
	for range 2 {
		src := slot.Src()
		loadCtx, cancel := context.WithTimeout(ctx, m.opts.ImageTimeout)
		img, err := m.loader.Load(loadCtx, src)
		cancel()
		delete(m.loading, slot.ID())
		if err == nil {
			slot.Loaded(src, img)
			return
		}
		m.log.WithFields(map[string]any{"slot": slot.ID(), "src": src}).Warn("image load failed: %v", err)
		if !slot.Fail(src) {
			return
		}
	}
}
