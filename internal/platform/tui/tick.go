// Package tui provides the Bubble Tea integration for beatsnake.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameElapsed caps one simulation step, so a stalled terminal or a
// suspended process does not teleport the snake.
const maxFrameElapsed = 0.1

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the seconds between two ticks, clamped to
// [0, maxFrameElapsed]. The first tick (zero prev) uses the nominal interval.
func frameElapsed(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return 1 / float64(tickRate)
	}
	return min(max(now.Sub(prev).Seconds(), 0), maxFrameElapsed)
}
