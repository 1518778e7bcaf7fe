package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/multiplayer"
	_ "github.com/vovakirdan/whack-arcade/internal/variants"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

func testSettings() Settings {
	return Settings{Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30, Seed: 3}}
}

func step(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionAsksForName(t *testing.T) {
	m := NewSessionModel(testSettings(), quietServices(nil), "")
	if m.state != stateName {
		t.Fatalf("state = %v, want name prompt", m.state)
	}

	// Enter with an empty name is ignored.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateName {
		t.Fatal("empty name must not be accepted")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ann")})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu", m.state)
	}
	if m.Player() != "ann" {
		t.Errorf("Player = %q, want ann", m.Player())
	}
	if !strings.Contains(m.View(), "Player: ann") {
		t.Error("menu should show the player")
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	store := &fakeStore{}
	m := NewSessionModel(testSettings(), quietServices(store), "ann")
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu", m.state)
	}

	// Cycle the difficulty once: normal -> easy.
	m, _ = step(t, m, runeKey('d'))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGame {
		t.Fatalf("state = %v, want game", m.state)
	}
	if cmd == nil {
		t.Error("starting a game should start the frame loop")
	}
	if m.settings.Preset != config.DifficultyEasy {
		t.Errorf("preset = %q, want easy", m.settings.Preset)
	}
	if !strings.Contains(m.View(), "WHACK-A-MOLE") {
		t.Error("game view should show the variant title")
	}

	m, _ = step(t, m, spaceKey)
	if got := m.game.Engine().Phase(); got != whack.PhaseRunning {
		t.Fatalf("phase = %v, want Running", got)
	}
	m, _ = step(t, m, runeKey('e'))
	m, _ = step(t, m, runeKey('b'))
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu after back", m.state)
	}
	if m.menu.Preset() != config.DifficultyEasy {
		t.Errorf("menu preset = %q, want the preset kept", m.menu.Preset())
	}

	// Stale frame ticks from the finished game are dropped.
	if _, cmd := step(t, m, TickMsg{}); cmd != nil {
		t.Error("menu should drop stale ticks")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := &fakeStore{saved: []whack.Summary{{Variant: "classic", Player: "bob", Score: 90}}}
	m := NewSessionModel(testSettings(), quietServices(store), "ann")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScoreboard {
		t.Fatalf("state = %v, want scoreboard", m.state)
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("scoreboard should list bob")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu", m.state)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testSettings(), quietServices(nil), "ann")
	m, cmd := step(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q in the menu should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(testSettings(), quietServices(nil), "ann")
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	b := m.game.screen.Bounds()
	if b.W != 60 || b.H != 20-helpHeight {
		t.Errorf("game screen = %dx%d, want 60x%d", b.W, b.H, 20-helpHeight)
	}
}

func TestSessionHallEvents(t *testing.T) {
	hall := multiplayer.NewHall()
	ann := hall.Join("ann")
	bob := hall.Join("bob")

	services := quietServices(&fakeStore{})
	services.Hall, services.Member = hall, ann
	m := NewSessionModel(testSettings(), services, "ann")

	// Bob's arrival is waiting in ann's queue.
	msg := services.waitForHall()()
	m, cmd := step(t, m, msg)
	if cmd == nil {
		t.Error("session should keep listening to the hall")
	}
	if !strings.Contains(m.View(), "bob joined (2 online)") {
		t.Error("menu should show bob joining")
	}

	// Ann finishes a round; bob hears about it, ann does not.
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, spaceKey)
	m, _ = step(t, m, runeKey('e'))

	select {
	case evt := <-bob.Events():
		want := "ann scored 0 on classic"
		if evt.String() != want {
			t.Errorf("bob heard %q, want %q", evt.String(), want)
		}
	default:
		t.Fatal("bob should hear about ann's round")
	}
	select {
	case evt := <-ann.Events():
		t.Errorf("ann heard her own round: %v", evt)
	default:
	}

	m, _ = step(t, m, hallEventMsg{evt: multiplayer.PlayerLeftEvent{Player: "bob", Online: 1}})
	if !strings.Contains(m.View(), "bob left (1 online)") {
		t.Error("game should show bob leaving on the toast line")
	}
}
