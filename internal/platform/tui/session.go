package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type sessionState int

const (
	stateName sessionState = iota
	stateMenu
	stateScoreboard
	stateGame
)

// SessionModel runs the whole arcade flow in one program:
// name prompt -> menu -> game or scoreboard -> menu.
type SessionModel struct {
	settings Settings
	services Services
	player   string
	state    sessionState

	name  NameModel
	menu  MenuModel
	board ScoreboardModel
	game  GameModel

	quitting bool
}

// NewSessionModel creates a session. With an empty player the session
// starts by asking for a name.
func NewSessionModel(settings Settings, services Services, player string) SessionModel {
	m := SessionModel{settings: settings, services: services, player: player}
	if player == "" {
		m.state = stateName
		m.name = NewNameModel("", settings.Runtime.ScreenW)
	} else {
		m.toMenu()
	}
	return m
}

func (m *SessionModel) toMenu() {
	preset := m.settings.Preset
	m.menu = NewMenuModel(m.settings.Runtime.ScreenW, m.settings.Runtime.ScreenH, m.player, preset)
	m.state = stateMenu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	first := m.menu.Init()
	if m.state == stateName {
		first = m.name.Init()
	}
	return tea.Batch(first, m.services.waitForHall())
}

// Update routes messages to the active screen. Sub-screens quit their own
// program when they finish; the session swallows those quits and switches
// screens instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.settings.Runtime.ScreenW = msg.Width
		m.settings.Runtime.ScreenH = msg.Height
	case hallEventMsg:
		m.notify(msg.evt.String())
		return m, m.services.waitForHall()
	}

	switch m.state {
	case stateName:
		return m.updateName(msg)
	case stateScoreboard:
		return m.updateScoreboard(msg)
	case stateGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateName(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.name.Update(msg)
	m.name = next.(NameModel)

	switch {
	case m.name.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.name.Done():
		m.player = m.name.Name()
		m.toMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil // Left over from a finished game
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.services.Store, m.settings.Runtime.ScreenW, m.settings.Runtime.ScreenH)
		m.state = stateScoreboard
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		variant := m.menu.Selected().ID
		m.settings.Preset = m.menu.Preset()
		game, err := GameFromRegistry(variant, m.player, m.settings, m.services)
		if err != nil {
			m.services.logger().Error("could not start game", "variant", variant, "err", err)
			m.toMenu()
			m.menu.SetNotice("Could not start " + variant + ": " + err.Error())
			return m, nil
		}
		m.services.logger().Info("game started", "variant", variant, "player", m.player, "difficulty", m.settings.Preset)
		m.game = game
		m.state = stateGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.toMenu()
		return m, cmd
	}
	return m, cmd
}

// notify shows a hall message on the active screen.
func (m *SessionModel) notify(text string) {
	switch m.state {
	case stateGame:
		m.game.Notify(text)
	case stateMenu:
		m.menu.SetNotice(text)
	}
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateName:
		return m.name.View()
	case stateScoreboard:
		return m.board.View()
	case stateGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// Player returns the player name of the session.
func (m SessionModel) Player() string {
	return m.player
}

// RunSession runs the full arcade flow in the local terminal.
func RunSession(settings Settings, services Services, player string) error {
	p := tea.NewProgram(
		NewSessionModel(settings, services, player),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
