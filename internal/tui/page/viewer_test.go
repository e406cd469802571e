package page

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/ui/components"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func testViewer() (*FullscreenViewer, *KeyListeners, *fakeClipboard) {
	listeners := NewKeyListeners()
	cb := &fakeClipboard{}
	return NewFullscreenViewer(listeners, "", media.ModeASCII, cb), listeners, cb
}

func TestViewerLatestRequestWins(t *testing.T) {
	viewer, listeners, _ := testViewer()

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg", Alt: "Beach"})
	viewer.Show(&media.EnlargeRequest{Src: "b.jpg", Alt: "River"})

	target, ok := viewer.Target()
	require.True(t, ok)
	assert.Equal(t, media.EnlargeRequest{Src: "b.jpg", Alt: "River"}, target)
	assert.Equal(t, "b.jpg", viewer.Slot().Src())
	assert.Equal(t, 1, listeners.Len(), "one escape listener however many shows")
}

func TestViewerIgnoresNilTarget(t *testing.T) {
	viewer, listeners, _ := testViewer()

	assert.False(t, viewer.Show(nil))
	assert.False(t, viewer.Shown())
	assert.Equal(t, 0, listeners.Len())

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg"})
	viewer.Show(nil)
	target, _ := viewer.Target()
	assert.Equal(t, "a.jpg", target.Src)
}

func TestViewerEscapeThenEscape(t *testing.T) {
	viewer, listeners, _ := testViewer()
	viewer.Show(&media.EnlargeRequest{Src: "a.jpg", Alt: "Beach"})

	_, handled := listeners.Dispatch(escKey())
	assert.True(t, handled)
	assert.False(t, viewer.Shown())
	assert.Equal(t, 0, listeners.Len())

	_, handled = listeners.Dispatch(escKey())
	assert.False(t, handled)
	assert.False(t, viewer.Shown())
}

func TestViewerReleasesListenerOnce(t *testing.T) {
	viewer, listeners, _ := testViewer()
	other := listeners.Add(defaultKeyMap().Close, nil)

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg"})
	assert.Equal(t, 2, listeners.Len())

	assert.True(t, viewer.Hide())
	assert.False(t, viewer.Hide())
	viewer.Unmount()
	assert.Equal(t, 1, listeners.Len(), "unrelated listener survives")

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg"})
	viewer.Unmount()
	viewer.Unmount()
	assert.Equal(t, 1, listeners.Len())
	other()
}

func TestViewerCaptionOnlyWithAlt(t *testing.T) {
	viewer, _, _ := testViewer()

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg"})
	g := viewer.Geometry(80, 24)
	assert.True(t, g.Caption.Empty())
	assert.Equal(t, 22, g.Image.Height)

	viewer.Show(&media.EnlargeRequest{Src: "a.jpg", Alt: "Pantai Bali"})
	g = viewer.Geometry(80, 24)
	assert.False(t, g.Caption.Empty())
	assert.Equal(t, 21, g.Image.Height)

	out := viewer.Overlay(components.DefaultContext(), "", 80, 24)
	assert.Contains(t, out, "Pantai Bali")
	assert.Len(t, strings.Split(out, "\n"), 24)
}

func TestViewerClicks(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		hidden bool
	}{
		{name: "caption", x: 40, y: 23, hidden: false},
		{name: "image", x: 40, y: 10, hidden: true},
		{name: "close control", x: 76, y: 0, hidden: true},
		{name: "backdrop", x: 0, y: 10, hidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer, listeners, _ := testViewer()
			viewer.Show(&media.EnlargeRequest{Src: "a.jpg", Alt: "Beach"})

			assert.True(t, viewer.Click(tt.x, tt.y, 80, 24))
			assert.Equal(t, tt.hidden, !viewer.Shown())
			if tt.hidden {
				assert.Equal(t, 0, listeners.Len())
			}
		})
	}
}

func TestViewerClickWhileHidden(t *testing.T) {
	viewer, _, _ := testViewer()
	assert.False(t, viewer.Click(1, 1, 80, 24))
}

func TestViewerCopy(t *testing.T) {
	viewer, _, cb := testViewer()
	viewer.Show(&media.EnlargeRequest{Src: "https://example.com/a.jpg"})

	src, err := viewer.Copy()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", src)
	assert.Equal(t, src, cb.text)

	cb.err = stderrors.New("no clipboard")
	_, err = viewer.Copy()
	assert.Error(t, err)
}
