package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/core"
)

func TestDecode(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"keypad top left", runeKey('7'), core.Input{Action: core.ActionWhack, Slot: 0}},
		{"keypad center", runeKey('5'), core.Input{Action: core.ActionWhack, Slot: 4}},
		{"keypad bottom right", runeKey('3'), core.Input{Action: core.ActionWhack, Slot: 8}},
		{"space starts", spaceKey, core.Input{Action: core.ActionStart}},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionStart}},
		{"pause", runeKey('p'), core.Input{Action: core.ActionPause}},
		{"reset", runeKey('r'), core.Input{Action: core.ActionReset}},
		{"end", runeKey('e'), core.Input{Action: core.ActionEnd}},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, core.Input{Action: core.ActionBack}},
		{"help", runeKey('?'), core.Input{Action: core.ActionHelp}},
		{"quit", runeKey('q'), core.Input{Action: core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"unbound", runeKey('z'), core.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Decode(tt.msg, 9, 3); got != tt.want {
				t.Errorf("Decode = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeSmallBoard(t *testing.T) {
	keys := DefaultGameKeyMap()
	// Six holes in two rows: 7-9 are off the board.
	if got := keys.Decode(runeKey('7'), 6, 3); got.Action != core.ActionNone {
		t.Errorf("Decode(7) on 6 holes = %+v, want none", got)
	}
	if got := keys.Decode(runeKey('4'), 6, 3); got != (core.Input{Action: core.ActionWhack, Slot: 0}) {
		t.Errorf("Decode(4) on 6 holes = %+v, want slot 0", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('d'), MenuActionDifficulty},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyLabels(t *testing.T) {
	got := keyLabels(9, 3)
	want := []string{"7", "8", "9", "4", "5", "6", "1", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
