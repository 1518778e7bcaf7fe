package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Email reports",
	Long: `Send reports through the Microsoft Graph sendMail API.

Reports go to WHACK_REPORT_EMAIL. The bearer token comes from
WHACK_GRAPH_TOKEN or the OS keychain (see 'whack auth set-token').
Set WHACK_REPORT_ENABLED=false to turn reports off.`,
}

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Email a player's daily dashboard",
	Long: `Email the dashboard of one player's day.

Examples:
  whack report daily --player ann
  whack report daily --player ann --date 2026-03-14`,
	Args: cobra.NoArgs,
	RunE: runReportDaily,
}

var reportGameCmd = &cobra.Command{
	Use:   "game <id>",
	Short: "Email the report of one finished round",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportGame,
}

func init() {
	reportDailyCmd.Flags().StringVar(&flagDate, "date", "", "Day to report as YYYY-MM-DD (default: today)")
	reportCmd.AddCommand(reportDailyCmd)
	reportCmd.AddCommand(reportGameCmd)
}

var errReportsOff = errors.New("reports are disabled: set WHACK_REPORT_EMAIL")

func runReportDaily(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "whack")
	reporter := newReporter(logger)
	if reporter == nil {
		return errReportsOff
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := loadDashboard(store)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	if err := reporter.SendDailyDashboard(ctx, d); err != nil {
		return err
	}
	fmt.Printf("Sent dashboard for %s (%d rounds)\n", d.DayLabel(), len(d.Games))
	return nil
}

func runReportGame(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, "whack")
	reporter := newReporter(logger)
	if reporter == nil {
		return errReportsOff
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := store.GameByID(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	if err := reporter.SendGameReport(ctx, s); err != nil {
		return err
	}
	fmt.Printf("Sent report for round %s\n", s.ID)
	return nil
}
