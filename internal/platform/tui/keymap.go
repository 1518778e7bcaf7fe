package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/core"
)

// GameKeyMap defines the key bindings used during a round.
type GameKeyMap struct {
	Whack key.Binding
	Start key.Binding
	Pause key.Binding
	Reset key.Binding
	End   key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Whack, k.Start, k.Pause, k.End, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Whack, k.Start, k.Pause},
		{k.Reset, k.End, k.Back},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default round bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Whack: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9/click", "whack"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end round"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Decode translates a key press into a game input for a board of count holes
// laid out in cols columns. Digits map to holes in keypad order.
func (k GameKeyMap) Decode(msg tea.KeyMsg, count, cols int) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Whack):
		r := msg.Runes
		if len(r) == 1 {
			if slot, ok := core.KeypadSlot(r[0], count, cols); ok {
				return core.Input{Action: core.ActionWhack, Slot: slot}
			}
		}
	case key.Matches(msg, k.Start):
		return core.Input{Action: core.ActionStart}
	case key.Matches(msg, k.Pause):
		return core.Input{Action: core.ActionPause}
	case key.Matches(msg, k.Reset):
		return core.Input{Action: core.ActionReset}
	case key.Matches(msg, k.End):
		return core.Input{Action: core.ActionEnd}
	case key.Matches(msg, k.Back):
		return core.Input{Action: core.ActionBack}
	case key.Matches(msg, k.Help):
		return core.Input{Action: core.ActionHelp}
	}
	return core.Input{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionDifficulty
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "d":
		return MenuActionDifficulty
	}
	return MenuActionNone
}
