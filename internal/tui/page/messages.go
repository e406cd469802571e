package page

import (
	"image"

	"github.com/alexisbeaulieu97/reveal/internal/media"
)

// Image Messages

// ImageLoadedMsg delivers decoded pixels for the source a slot requested.
type ImageLoadedMsg struct {
	SlotID string
	Src    string
	Image  image.Image
}

// ImageFailedMsg reports that loading a slot's source failed.
type ImageFailedMsg struct {
	SlotID string
	Src    string
	Err    error
}

// Interaction Messages

// EnlargeMsg asks the page to show a source fullscreen.
type EnlargeMsg struct {
	Target *media.EnlargeRequest
}

// NavigateMsg asks the page to scroll a section anchor to the top.
type NavigateMsg struct {
	ID string
}

// Animation Messages

// frameMsg advances running animations by one frame.
type frameMsg struct{}

// heroStageMsg reveals the next part of the hero.
type heroStageMsg struct {
	Stage int
}

// flashClearMsg hides the flash line if it is still the one identified by Seq.
type flashClearMsg struct {
	Seq int
}
