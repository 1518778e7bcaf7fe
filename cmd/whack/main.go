// whack is a terminal whack-a-mole arcade.
//
// Usage:
//
//	whack list                 - List available variants
//	whack play [variant]       - Play a variant
//	whack menu                 - Pick variants interactively
//	whack serve                - Serve the arcade over SSH (and HTTP)
//	whack scores [variant]     - Show high scores
//	whack history              - Show today's dashboard
//	whack report daily         - Email today's dashboard
//	whack auth set-token       - Store the mail API token in the keychain
//	whack simulate             - Let a bot play rounds headlessly
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.whack/scores.db)
//	--player <name>      - Player name used in scores and reports
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/config"

	// Import variants to register them
	_ "github.com/vovakirdan/whack-arcade/internal/variants"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPlayer     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagEnvFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whack",
	Short: "Whack Arcade - whack-a-mole in your terminal",
	Long: `Whack Arcade is a terminal whack-a-mole game. Occupants pop out of
holes for a short while; whack them with the number keys or the mouse
before they hide again. Consecutive quick hits build a combo multiplier.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - SSH server for remote play, with an optional HTTP dashboard
  scores    - View high scores
  history   - View a daily dashboard
  report    - Email reports
  auth      - Manage the mail API token
  simulate  - Let a bot play

Examples:
  whack list
  whack play classic
  whack play villain --difficulty hard
  whack menu --player ann
  whack serve --ssh :2222 --http :8080
  whack history --player ann`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		return config.LoadEnv(flagEnvFile)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Frame rate of the terminal UI")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.whack/scores.db", "Path to scores database")
	pf.StringVar(&flagPlayer, "player", "", "Player name")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Environment file with report settings")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(simulateCmd)
}
