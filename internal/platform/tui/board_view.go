package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// Screen rows above and below the board.
const (
	rowTitle  = 0
	rowHUD    = 1
	rowBanner = 2
	boardTop  = 3
	footer    = 2 // Status and toast lines
)

// layout places the holes on the screen, shrinking them on small terminals.
func (m *GameModel) layout() {
	area := core.NewRect(0, boardTop, m.screen.Width(), max(m.screen.Height()-boardTop-footer, 0))
	cols := m.columns()
	g := core.Grid{Count: m.holes(), Cols: cols, GapX: 2, GapY: 1}
	rows := g.Rows()
	if area.H < rows*4+(rows-1) {
		g.GapY = 0
	}
	g.CellH = core.Clamp((area.H-(rows-1)*g.GapY)/max(rows, 1), 3, 5)
	g.CellW = core.Clamp((area.W-(cols-1)*g.GapX)/max(cols, 1), 8, 16)
	m.cells = g.Layout(area)
}

// keyLabels returns the digit that whacks each hole, or "" when none does.
func keyLabels(count, cols int) []string {
	labels := make([]string, count)
	for r := '1'; r <= '9'; r++ {
		if slot, ok := core.KeypadSlot(r, count, cols); ok {
			labels[slot] = string(r)
		}
	}
	return labels
}

func (m GameModel) draw() {
	s := m.screen
	s.Clear()
	st := m.engine.State()

	s.DrawTextCentered(rowTitle, strings.ToUpper(m.title), core.ColorBrightYellow)
	s.DrawTextCentered(rowHUD, hudLine(st), core.ColorWhite)
	if text, color, ok := m.hud.banner(); ok {
		s.DrawTextCentered(rowBanner, text, color)
	}

	labels := keyLabels(m.holes(), m.columns())
	for _, slot := range m.engine.Slots() {
		if slot.Index >= len(m.cells) {
			break
		}
		m.drawHole(m.cells[slot.Index], slot, labels[slot.Index])
	}

	status, color := m.statusLine(st)
	s.DrawTextCentered(s.Height()-2, status, color)
	if m.toast != "" && m.clock.Now() < m.toastUntil {
		s.DrawTextCentered(s.Height()-1, m.toast, core.ColorCyan)
	}
}

func hudLine(st whack.RoundState) string {
	parts := []string{}
	if st.Player != "" {
		parts = append(parts, "Player "+st.Player)
	}
	parts = append(parts,
		fmt.Sprintf("Score %d", st.Score),
		fmt.Sprintf("Combo x%d", st.Combo),
		fmt.Sprintf("Best %d", st.HighScore),
		fmt.Sprintf("Time %ds", st.TimeRemaining),
	)
	return strings.Join(parts, "   ")
}

func (m GameModel) drawHole(r core.Rect, slot whack.Slot, label string) {
	s := m.screen
	midY := r.Y + r.H/2

	switch {
	case m.hud.popping(slot.Index):
		s.DrawBox(r, core.ColorBrightWhite)
		s.DrawTextIn(r, midY, "POW!", core.ColorBrightWhite)

	case slot.Occupied:
		occ, _ := m.engine.Occupant(slot.Type)
		color := core.ParseColor(occ.Color)
		if color == core.ColorDefault {
			color = core.ColorBrightYellow
		}
		s.DrawBox(r, color)
		s.DrawTextIn(r, midY, fit(occ.Name, r.W-2), color)
		if r.H >= 5 {
			s.DrawTextIn(r, midY+1, fmt.Sprintf("+%d", occ.Points), core.ColorGray)
		}

	default:
		s.DrawBox(r, core.ColorGray)
		s.DrawTextIn(r, midY, "( )", core.ColorGray)
	}

	if label != "" {
		s.DrawText(r.X+1, r.Y, label)
	}
}

func (m GameModel) statusLine(st whack.RoundState) (string, core.Color) {
	switch st.Phase {
	case whack.PhaseReady:
		return "Press SPACE to start", core.ColorBrightCyan
	case whack.PhasePaused:
		return "PAUSED  p: resume  e: end  b: menu", core.ColorYellow
	case whack.PhaseEnded:
		text := fmt.Sprintf("GAME OVER  Score %d", st.Score)
		if last := m.hud.last; last != nil {
			if last.NewHighScore {
				text += "  NEW HIGH SCORE!"
			}
			text += fmt.Sprintf("  Hits %d  Misses %d  Best combo x%d", last.Hits, last.Misses, last.BestCombo)
		}
		return text + "  SPACE: again", core.ColorBrightMagenta
	default:
		return "", core.ColorDefault
	}
}

// fit truncates text to width runes.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "."
}
