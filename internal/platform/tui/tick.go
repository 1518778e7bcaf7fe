// Package tui runs whack rounds in the terminal with Bubble Tea, locally or
// over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances a game's clock to the wall time it carries.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
