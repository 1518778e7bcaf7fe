package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/whack-arcade/internal/config"
	"github.com/vovakirdan/whack-arcade/internal/core"
	"github.com/vovakirdan/whack-arcade/internal/httpapi"
	"github.com/vovakirdan/whack-arcade/internal/platform/tui"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session and its own round engine; the
SSH username is the player name. Scores are stored per server, so all
users share the same leaderboard.

With --http (or WHACK_HTTP_ADDR) a JSON/HTML dashboard is served as well:
  GET /health, /variants, /scores/{variant}, /games/today?player=,
  /games/{id}, /games/{id}/report, /dashboard?player=&date=

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.whack/host_key

Examples:
  whack serve                           # Listen on :23234 with auto-generated key
  whack serve --ssh :2222               # Listen on port 2222
  whack serve --http :8080              # Also serve the HTTP dashboard
  whack serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP dashboard address (defaults to WHACK_HTTP_ADDR, empty disables)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "whack")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	httpSettings := config.HTTPFromEnv()
	if flagHTTPAddr != "" {
		httpSettings.Addr = flagHTTPAddr
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Settings = tui.Settings{
		ConfigPath: flagConfig,
		Preset:     difficulty(),
		Runtime:    core.RuntimeConfig{TickRate: flagFPS},
	}
	cfg.Services = newServices(store, logger.WithPrefix("whack-ssh"))

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting whack SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	if httpSettings.Addr != "" {
		fmt.Printf("HTTP dashboard on %s\n", httpSettings.Addr)
	}
	fmt.Println("Press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(gctx)
	})
	if httpSettings.Addr != "" {
		api := httpapi.New(httpapi.Config{
			Store:      store,
			Logger:     logger.WithPrefix("whack-http"),
			CORSOrigin: httpSettings.CORSOrigin,
		})
		g.Go(func() error {
			return api.ListenAndServe(gctx, httpSettings.Addr)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
