package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for the specified variant. Without a variant,
show a summary of every variant that has been played.

Examples:
  whack scores classic
  whack scores villain --limit 20
  whack scores
  whack scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a variant")
		}
		return printAllStats(store)
	}

	variant := args[0]
	v, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("unknown variant %q (run 'whack list' to see available variants)", variant)
	}

	if flagScoresClear {
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", v.Title())
		return nil
	}

	scores, err := store.TopScores(variant, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", v.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'whack play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(variant); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Rounds: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Variant", "Rounds", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "-------", "------", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %-6d  %-6d  %-8.0f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
