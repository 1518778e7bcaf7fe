package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/sched"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

const (
	toastFor   = 4 * time.Second
	helpHeight = 1
)

// GameOptions configure one GameModel.
type GameOptions struct {
	Variant  string
	Title    string
	Config   config.WhackConfig
	Player   string
	Runtime  core.RuntimeConfig
	Services Services
}

// GameModel plays rounds of one variant. The engine runs on a virtual clock
// that every TickMsg advances by the wall time elapsed since the previous
// frame, so timers and key presses are handled on the Bubble Tea goroutine.
type GameModel struct {
	engine   *whack.Engine
	clock    *sched.Virtual
	hud      *hud
	title    string
	variant  string
	screen   *core.Screen
	cells    []core.Rect
	runtime  core.RuntimeConfig
	services Services
	keys     GameKeyMap
	help     help.Model

	lastTick   time.Time
	toast      string
	toastUntil time.Duration

	quitting   bool
	backToMenu bool
	exitOnBack bool // No menu to return to
}

// NewGameModel creates a game for the given variant configuration.
func NewGameModel(opts GameOptions) (GameModel, error) {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	clock := sched.NewVirtual()
	h := newHUD(clock)
	engine, err := whack.New(opts.Config, whack.Options{
		Scheduler: clock,
		Rand:      rand.New(rand.NewSource(rt.Seed)),
		Listener:  h,
		Variant:   opts.Variant,
		Player:    opts.Player,
		HighScore: opts.Services.highScore(opts.Variant),
	})
	if err != nil {
		return GameModel{}, err
	}

	title := opts.Title
	if title == "" {
		title = opts.Variant
	}
	m := GameModel{
		engine:   engine,
		clock:    clock,
		hud:      h,
		title:    title,
		variant:  opts.Variant,
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-helpHeight, 1)),
		runtime:  rt,
		services: opts.Services,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
	}
	m.help.Width = rt.ScreenW
	m.layout()
	return m, nil
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.keys.Decode(msg, m.holes(), m.columns()))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if slot := core.HitCell(m.cells, msg.X, msg.Y); slot >= 0 {
				return m.handleInput(core.Input{Action: core.ActionWhack, Slot: slot})
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW, m.runtime.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if elapsed := now.Sub(m.lastTick); elapsed > 0 {
				m.clock.Advance(elapsed)
			}
		}
		m.lastTick = now
		return m, tea.Batch(m.afterRound(), tickCmd(m.runtime.TickRate))

	case summarySavedMsg:
		if msg.err != nil {
			m.services.logger().Error("could not save round", "game", msg.id, "err", msg.err)
			m.setToast("Save failed: " + msg.err.Error())
		} else {
			m.setToast("Score saved")
		}
		return m, nil

	case reportSentMsg:
		if msg.err != nil {
			m.setToast("Report not sent: " + msg.err.Error())
		} else {
			m.setToast("Report emailed")
		}
		return m, nil
	}
	return m, nil
}

func (m GameModel) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	log := m.services.logger()

	switch in.Action {
	case core.ActionQuit:
		m.engine.Reset()
		m.quitting = true
		return m, tea.Quit

	case core.ActionWhack:
		if _, err := m.engine.Interact(in.Slot); err != nil {
			log.Debug("whack rejected", "slot", in.Slot, "err", err)
		}

	case core.ActionStart:
		if !m.engine.Start() {
			log.Debug("start ignored", "phase", m.engine.Phase())
		}

	case core.ActionPause:
		if !m.engine.TogglePause() {
			log.Debug("pause ignored", "phase", m.engine.Phase())
		}

	case core.ActionReset:
		m.engine.Reset()

	case core.ActionEnd:
		if !m.engine.End() {
			log.Debug("end ignored", "phase", m.engine.Phase())
		}

	case core.ActionBack:
		if m.engine.Phase() == whack.PhaseRunning {
			return m, nil
		}
		m.engine.Reset()
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, m.afterRound()
}

// afterRound hands rounds that just finished to storage and the reporter.
func (m GameModel) afterRound() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.hud.takeEnded() {
		m.services.logger().Info("round finished",
			"game", s.ID, "variant", s.Variant, "player", s.Player,
			"score", s.Score, "reason", s.Reason)
		m.services.announce(s)
		cmds = append(cmds, m.services.saveCmd(s), m.services.reportCmd(s))
	}
	return tea.Batch(cmds...)
}

// Notify shows text on the toast line.
func (m *GameModel) Notify(text string) {
	m.setToast(text)
}

func (m *GameModel) setToast(text string) {
	m.toast = text
	m.toastUntil = m.clock.Now() + toastFor
}

func (m GameModel) holes() int {
	return m.engine.Config().Board.Holes
}

func (m GameModel) columns() int {
	cols := m.engine.Config().Board.Columns
	if cols <= 0 {
		cols = 3
	}
	return min(cols, m.holes())
}

// Engine exposes the round engine, mostly for tests.
func (m GameModel) Engine() *whack.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameFromRegistry loads a registered variant and builds its game model.
func GameFromRegistry(variant, player string, settings Settings, services Services) (GameModel, error) {
	v, err := registry.Create(variant)
	if err != nil {
		return GameModel{}, err
	}
	cfg, err := v.Config(settings.ConfigPath)
	if err != nil {
		return GameModel{}, fmt.Errorf("load %s config: %w", variant, err)
	}
	if settings.Preset != "" {
		config.ApplyPreset(&cfg, settings.Preset)
	}
	return NewGameModel(GameOptions{
		Variant:  variant,
		Title:    v.Title(),
		Config:   cfg,
		Player:   player,
		Runtime:  settings.Runtime,
		Services: services,
	})
}

// RunGame plays one variant until the player quits.
func RunGame(variant, player string, settings Settings, services Services) error {
	model, err := GameFromRegistry(variant, player, settings, services)
	if err != nil {
		return err
	}
	model.exitOnBack = true
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
