package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColor(0, 100, ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '@', ColorGreen)
	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("GetCell = %+v", c)
	}

	s.SetColor(1, 1, ColorOrange)
	if c := s.GetCell(1, 1); c.Rune != '@' || c.Color != ColorOrange {
		t.Errorf("SetColor changed the rune or missed the color: %+v", c)
	}

	s.DrawTextColored(0, 0, "hi", ColorRed)
	if s.GetCell(1, 0).Color != ColorRed {
		t.Error("DrawTextColored did not color the text")
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	if got := s.String(); got != strings.TrimSuffix(strings.Repeat("#####\n", 5), "\n") {
		t.Errorf("After Fill, String() = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("row 1 = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "★x")
	if s.Get(0, 0) != '★' || s.Get(1, 0) != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered misplaced text: %q", s.Row(2))
	}

	s.DrawTextIn(NewRect(10, 0, 6, 1), 4, "ab", ColorDefault)
	if s.Get(12, 4) != 'a' {
		t.Errorf("DrawTextIn misplaced text: %q", s.Row(4))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGray)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGray {
				t.Errorf("DrawRect: cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorYellow)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorYellow {
		t.Error("box should carry its color")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay blank")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(2, 2, 5, '-', ColorDefault)
	s.DrawVLine(3, 4, 4, '|', ColorDefault)

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2)", x)
		}
	}
	for y := 4; y < 8; y++ {
		if s.Get(3, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (3, %d)", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorCyan {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Get(14, 7) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	if row := s.Row(2); row != "Test      " {
		t.Errorf("Row(2) = %q", row)
	}
	if row := s.Row(-1); row != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", row)
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]Color{
		"green":         ColorGreen,
		"Orange":        ColorOrange,
		"bright_yellow": ColorBrightYellow,
		"brightyellow":  ColorBrightYellow,
		"Bright Cyan":   ColorBrightCyan,
		"magenta":       ColorMagenta,
		"chartreuse":    ColorDefault,
		"":              ColorDefault,
	}
	for name, want := range tests {
		if got := ParseColor(name); got != want {
			t.Errorf("ParseColor(%q) = %d, expected %d", name, got, want)
		}
	}
}

func TestKeypadSlot(t *testing.T) {
	tests := []struct {
		key         rune
		count, cols int
		slot        int
		ok          bool
	}{
		{'7', 9, 3, 0, true},
		{'9', 9, 3, 2, true},
		{'5', 9, 3, 4, true},
		{'1', 9, 3, 6, true},
		{'3', 9, 3, 8, true},
		{'0', 9, 3, 0, false},
		{'x', 9, 3, 0, false},
		// 2x3 board: 4-5-6 is the top row, 1-2-3 the bottom
		{'4', 6, 3, 0, true},
		{'1', 6, 3, 3, true},
		{'7', 6, 3, 0, false},
		// 5 holes in rows of 3: the bottom row has two
		{'3', 5, 3, 0, false},
		{'2', 5, 3, 4, true},
		// Boards wider than the keypad are not mapped
		{'1', 8, 4, 0, false},
	}
	for _, tc := range tests {
		slot, ok := KeypadSlot(tc.key, tc.count, tc.cols)
		if ok != tc.ok || (ok && slot != tc.slot) {
			t.Errorf("KeypadSlot(%q, %d, %d) = %d, %v; expected %d, %v",
				tc.key, tc.count, tc.cols, slot, ok, tc.slot, tc.ok)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionWhack.String() != "Whack" || ActionEnd.String() != "End" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
