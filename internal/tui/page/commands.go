package page

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reveal/internal/media"
)

const (
	frameRate     = 60
	flashDuration = 2 * time.Second
)

// heroStageDelays are the offsets at which title, subtitle and call to
// action appear.
var heroStageDelays = []time.Duration{
	200 * time.Millisecond,
	400 * time.Millisecond,
	600 * time.Millisecond,
}

// frameCmd schedules the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// heroStagesCmd schedules every hero stage relative to now.
func heroStagesCmd() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(heroStageDelays))
	for i, delay := range heroStageDelays {
		stage := i + 1
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return heroStageMsg{Stage: stage}
		}))
	}
	return tea.Batch(cmds...)
}

// loadImageCmd loads src for a slot and reports the outcome. The result
// carries src so late results for a replaced source can be dropped.
func loadImageCmd(ctx context.Context, loader media.Loader, timeout time.Duration, slotID, src string) tea.Cmd {
	return func() tea.Msg {
		loadCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		img, err := loader.Load(loadCtx, src)
		if err != nil {
			return ImageFailedMsg{SlotID: slotID, Src: src, Err: err}
		}
		return ImageLoadedMsg{SlotID: slotID, Src: src, Image: img}
	}
}

// navigateCmd turns a menu selection into a navigation request.
func navigateCmd(id string, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return NavigateMsg{ID: id}
	}
}

// enlargeCmd forwards an enlarge request to the page.
func enlargeCmd(target *media.EnlargeRequest, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return EnlargeMsg{Target: target}
	}
}

func flashClearCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{Seq: seq}
	})
}
