package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
	"github.com/vovakirdan/whack-arcade/internal/registry"
)

const defaultVariant = "classic"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (classic when omitted).

Controls:
  1-9 / click  - Whack a hole (number keys follow the keypad layout)
  Space/Enter  - Start a round
  P            - Pause / resume
  E            - End the round early
  R            - Reset
  B/Esc        - Leave (when no round is running)
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Occupants stay up longer
  normal - Default timings
  hard   - Misses cost double
  fixed  - No speed-up during the round

Examples:
  whack play
  whack play villain --difficulty hard
  whack play classic --config ./my-classic.yaml --player ann`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'whack list' to see available variants)", variant)
	}

	logger, closeLog := fileLogger("whack")
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("playing", "variant", variant, "player", playerName(), "difficulty", flagDifficulty)
	return tui.RunGame(variant, playerName(), uiSettings(), newServices(store, logger))
}
