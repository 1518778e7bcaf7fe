package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/multiplayer"
	"github.com/vovakirdan/whack-arcade/internal/report"
	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

// ScoreStore is the part of the score database the terminal UI uses.
type ScoreStore interface {
	whack.SummaryRecorder
	HighScore(variant string) (int, error)
	TopScores(variant string, limit int) ([]storage.ScoreEntry, error)
}

// Services are the side-effect collaborators of the UI. Any of them may be
// nil: without a store nothing is saved, without a reporter no mail is sent.
type Services struct {
	Store    ScoreStore
	Reporter *report.Reporter
	Logger   *log.Logger

	// Hall and Member are set for SSH sessions sharing a server.
	Hall   *multiplayer.Hall
	Member *multiplayer.ChannelSession
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Settings select how rounds are configured.
type Settings struct {
	ConfigPath string                  // Custom YAML overriding the variant defaults
	Preset     config.DifficultyPreset // Empty keeps the configured difficulty
	Runtime    core.RuntimeConfig
}

const reportTimeout = 20 * time.Second

// summarySavedMsg reports the outcome of storing a finished round.
type summarySavedMsg struct {
	id  string
	err error
}

// reportSentMsg reports the outcome of mailing a game report.
type reportSentMsg struct {
	id  string
	err error
}

func (s Services) saveCmd(sum whack.Summary) tea.Cmd {
	if s.Store == nil {
		return nil
	}
	store := s.Store
	return func() tea.Msg {
		return summarySavedMsg{id: sum.ID, err: store.RecordSummary(sum)}
	}
}

func (s Services) reportCmd(sum whack.Summary) tea.Cmd {
	if s.Reporter == nil {
		return nil
	}
	reporter := s.Reporter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		return reportSentMsg{id: sum.ID, err: reporter.SendGameReport(ctx, sum)}
	}
}

// announce tells the other players in the hall about a finished round.
func (s Services) announce(sum whack.Summary) {
	if s.Hall != nil && s.Member != nil {
		s.Hall.Announce(s.Member.ID(), sum)
	}
}

// hallEventMsg carries an event from the hall into the update loop.
type hallEventMsg struct {
	evt multiplayer.SessionEvent
}

// waitForHall returns a command that waits for the next hall event.
func (s Services) waitForHall() tea.Cmd {
	member := s.Member
	if member == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case evt := <-member.Events():
			return hallEventMsg{evt: evt}
		case <-member.Done():
			return nil
		}
	}
}

// highScore looks up the persisted best score, or 0 without a store.
func (s Services) highScore(variant string) int {
	if s.Store == nil {
		return 0
	}
	best, err := s.Store.HighScore(variant)
	if err != nil {
		s.logger().Warn("could not load high score", "variant", variant, "err", err)
		return 0
	}
	return best
}
