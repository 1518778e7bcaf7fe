package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/whack-arcade/internal/report"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the mail API token",
	Long: `Store or remove the Microsoft Graph bearer token used for email
reports. The token is kept in the OS keychain; WHACK_GRAPH_TOKEN, when
set, takes precedence.`,
}

var setTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the token in the OS keychain",
	Long: `Store the token in the OS keychain. Without an argument the token is
read from the terminal without echo, or from stdin when piped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetToken,
}

var clearTokenCmd = &cobra.Command{
	Use:   "clear-token",
	Short: "Remove the stored token",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := report.DefaultKeyring().Clear(); err != nil {
			return err
		}
		fmt.Println("Token removed.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(setTokenCmd)
	authCmd.AddCommand(clearTokenCmd)
}

func runSetToken(_ *cobra.Command, args []string) error {
	token := ""
	if len(args) == 1 {
		token = args[0]
	} else {
		var err error
		if token, err = readToken(); err != nil {
			return err
		}
	}
	if err := report.DefaultKeyring().Set(token); err != nil {
		return err
	}
	fmt.Println("Token stored in the keychain.")
	return nil
}

func readToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Token: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(line), nil
}
