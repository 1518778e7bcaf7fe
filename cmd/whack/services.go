package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
	"github.com/vovakirdan/whack-arcade/internal/report"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

const logFile = "~/.whack/whack.log"

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger creates a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.whack/whack.log so the alt screen stays clean.
// The returned closer must be called on exit.
func fileLogger(prefix string) (*log.Logger, func()) {
	path := expandHome(logFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			return newLogger(f, prefix), func() { f.Close() }
		}
	}
	return newLogger(io.Discard, prefix), func() {}
}

// openStore opens the score database. Interactive play works without one,
// so failures are only warnings there.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newReporter builds the email reporter from the environment, or returns
// nil when reports are disabled.
func newReporter(logger *log.Logger) *report.Reporter {
	settings := config.ReportFromEnv()
	if !settings.Enabled {
		return nil
	}
	mailer := report.NewGraphMailer(report.GraphConfig{
		Endpoint: settings.Endpoint,
		Tokens: report.ChainTokens{
			report.EnvToken(config.TokenEnvVar),
			report.DefaultKeyring(),
		},
	})
	return report.NewReporter(mailer, settings.Recipient, logger)
}

// newServices wires storage and the reporter for the UI. A nil store is
// left as a nil interface so the UI sees "no store".
func newServices(store *storage.Store, logger *log.Logger) tui.Services {
	services := tui.Services{Reporter: newReporter(logger), Logger: logger}
	if store != nil {
		services.Store = store
	}
	return services
}

// runtimeConfig sizes the UI to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func uiSettings() tui.Settings {
	return tui.Settings{
		ConfigPath: flagConfig,
		Preset:     difficulty(),
		Runtime:    runtimeConfig(),
	}
}

// difficulty returns the --difficulty preset, already checked by the root
// command.
func difficulty() config.DifficultyPreset {
	p, _ := config.ParsePreset(flagDifficulty)
	return p
}

// playerName returns --player, falling back to the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}
