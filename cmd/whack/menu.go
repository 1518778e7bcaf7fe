package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a variant picker menu",
	Long: `Start the arcade in interactive menu mode.

Without --player the arcade first asks for your name. Use arrow keys or
j/k to navigate and Enter to play. After a round, B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected variant
  D            - Cycle difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  whack menu
  whack menu --player ann --fps 60
  whack menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := fileLogger("whack")
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(uiSettings(), newServices(store, logger), flagPlayer)
}
