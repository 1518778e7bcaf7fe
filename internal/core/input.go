package core

// Action is a semantic input, abstracted from the key or click that caused it.
type Action int

const (
	ActionNone  Action = iota
	ActionWhack        // 1-9 or a mouse click on a hole
	ActionStart        // Space, Enter
	ActionPause        // P
	ActionReset        // R
	ActionEnd          // E
	ActionBack         // B, Escape
	ActionQuit         // Q, Ctrl+C
	ActionHelp         // ?
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionWhack:
		return "Whack"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionEnd:
		return "End"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Input is one decoded user input. Slot is only meaningful for ActionWhack.
type Input struct {
	Action Action
	Slot   int
}

// KeypadSlot maps a digit key to a hole using the numeric keypad layout:
// on a 3x3 board 7-8-9 is the top row and 1-2-3 the bottom one. Boards of
// other shapes keep the bottom-up row order. ok is false for non-digits and
// digits with no hole behind them. Boards wider than three columns have no
// keypad mapping.
func KeypadSlot(key rune, count, cols int) (slot int, ok bool) {
	if key < '1' || key > '9' || cols <= 0 || count <= 0 {
		return 0, false
	}
	n := int(key - '1') // 0..8
	if cols > 3 {
		return 0, false
	}
	keypadRow, col := n/3, n%3 // keypadRow 0 is the bottom row
	if col >= cols {
		return 0, false
	}
	rows := (count + cols - 1) / cols
	if keypadRow >= rows {
		return 0, false
	}
	slot = (rows-1-keypadRow)*cols + col
	if slot >= count {
		return 0, false
	}
	return slot, true
}
