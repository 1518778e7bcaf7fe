package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/registry"
)

var presetCycle = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []registry.VariantInfo
	cursor         int
	width          int
	height         int
	player         string
	preset         config.DifficultyPreset
	notice         string
	quitting       bool
	selected       *registry.VariantInfo
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(width, height int, player string, preset config.DifficultyPreset) MenuModel {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		player: player,
		preset: preset,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionDifficulty:
		m.preset = nextPreset(m.preset)
	}

	return m, nil
}

func nextPreset(p config.DifficultyPreset) config.DifficultyPreset {
	for i, c := range presetCycle {
		if c == p {
			return presetCycle[(i+1)%len(presetCycle)]
		}
	}
	return presetCycle[0]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("W H A C K   A R C A D E"), m.width))
	b.WriteString("\n\n")
	if m.player != "" {
		b.WriteString(centerText("Player: "+m.player, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", m.preset), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if i == m.cursor && item.Description != "" {
			b.WriteString(centerText(menuDimStyle.Render(item.Description), m.width))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  D: Difficulty  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// SetNotice shows a one-line message under the variant list.
func (m *MenuModel) SetNotice(text string) {
	m.notice = text
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m MenuModel) Selected() *registry.VariantInfo {
	return m.selected
}

// Preset returns the difficulty picked in the menu.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.preset
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within width, measuring its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
