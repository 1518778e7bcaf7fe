package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/report"
	"github.com/vovakirdan/whack-arcade/internal/storage"
	"github.com/vovakirdan/whack-arcade/internal/whack"
)

var (
	flagDate   string
	flagRecent int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a player's daily dashboard",
	Long: `Show the rounds a player finished on one day with their totals:
best and average score, play time, hit rate and score trend.

Examples:
  whack history --player ann
  whack history --player ann --date 2026-03-14
  whack history --recent 20`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagDate, "date", "", "Day to show as YYYY-MM-DD (default: today)")
	historyCmd.Flags().IntVar(&flagRecent, "recent", 0, "List the most recent rounds of all players instead")
}

// parseDay parses --date in local time, defaulting to today.
func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(storage.DayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --date %q, want YYYY-MM-DD", value)
	}
	return day, nil
}

// loadDashboard reads one player's rounds for a day.
func loadDashboard(store *storage.Store) (report.Dashboard, error) {
	day, err := parseDay(flagDate)
	if err != nil {
		return report.Dashboard{}, err
	}
	player := playerName()
	games, err := store.DailyGames(player, day)
	if err != nil {
		return report.Dashboard{}, err
	}
	return report.BuildDashboard(day, player, games), nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRecent > 0 {
		games, err := store.RecentGames(flagRecent)
		if err != nil {
			return err
		}
		printRounds(games)
		return nil
	}

	d, err := loadDashboard(store)
	if err != nil {
		return err
	}
	fmt.Println(report.DashboardText(d))
	return nil
}

func printRounds(games []whack.Summary) {
	if len(games) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}
	fmt.Printf("  %-16s  %-8s  %-12s  %-6s  %-5s  %-5s  %s\n", "Ended", "Variant", "Player", "Score", "Hits", "Miss", "ID")
	for _, g := range games {
		fmt.Printf("  %-16s  %-8s  %-12s  %-6d  %-5d  %-5d  %s\n",
			g.EndedAt.Local().Format("2006-01-02 15:04"), g.Variant, g.Player, g.Score, g.Hits, g.Misses, g.ID)
	}
}
