// Package tui runs the drops game in the terminal with Bubble Tea: the board
// presents the game, and the model feeds it frames, keys and mouse clicks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps how much time one frame may advance the game, so a
// stalled terminal does not fast-forward the round.
const maxFrameDelta = 250 * time.Millisecond

// FrameMsg is sent once per animation frame.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameDelta returns the time since the previous frame, clamped to
// (0, maxFrameDelta]. The first frame uses the nominal interval.
func frameDelta(prev, now time.Time, fps int) time.Duration {
	if prev.IsZero() {
		if fps <= 0 {
			fps = 30
		}
		return time.Second / time.Duration(fps)
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}
