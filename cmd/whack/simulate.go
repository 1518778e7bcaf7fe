package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/bot"
	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

var (
	flagVariant  string
	flagRounds   int
	flagSkill    float64
	flagReaction time.Duration
	flagLive     bool
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a bot play rounds headlessly",
	Long: `Play rounds with a computer player and print their summaries.

By default rounds run on a virtual clock and finish instantly. With --live
a single round plays in real time; Ctrl+C ends it early.

Examples:
  whack simulate --rounds 10
  whack simulate --variant villain --skill 0.5 --reaction 500ms
  whack simulate --live --save --player robo`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&flagVariant, "variant", defaultVariant, "Variant to play")
	f.IntVar(&flagRounds, "rounds", 5, "Number of rounds (virtual clock only)")
	f.Float64Var(&flagSkill, "skill", bot.DefaultSkill, "Chance of aiming at the right hole (0-1)")
	f.DurationVar(&flagReaction, "reaction", bot.DefaultReaction, "Delay between a spawn and the whack")
	f.BoolVar(&flagLive, "live", false, "Play one round in real time")
	f.BoolVar(&flagSave, "save", false, "Record the rounds in the scores database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "whack-bot")

	if flagSkill < 0 || flagSkill > 1 {
		return fmt.Errorf("--skill must be between 0 and 1, got %v", flagSkill)
	}

	v, err := registry.Create(flagVariant)
	if err != nil {
		return err
	}
	cfg, err := v.Config(flagConfig)
	if err != nil {
		return err
	}
	if preset := difficulty(); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	player := flagPlayer
	if player == "" {
		player = "bot"
	}
	opts := bot.Options{
		Reaction: flagReaction,
		Skill:    flagSkill,
		Seed:     flagSeed,
		Variant:  flagVariant,
		Player:   player,
	}

	var summaries []whack.Summary
	if flagLive {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		logger.Info("playing live", "variant", flagVariant, "seconds", cfg.Round.Seconds)
		s, err := bot.PlayLive(ctx, cfg, opts, 10*time.Millisecond)
		if err != nil {
			return err
		}
		summaries = append(summaries, s)
	} else {
		if summaries, err = bot.Simulate(cfg, flagRounds, opts); err != nil {
			return err
		}
	}

	printRounds(summaries)

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, s := range summaries {
			if err := store.RecordSummary(s); err != nil {
				return err
			}
		}
		logger.Info("rounds saved", "count", len(summaries), "db", flagDBPath)
	}
	return nil
}
