package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a mode picker menu and
its own game world. Press B in a game to return to the menu.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  skyshooter serve                           # Listen on :23234 with auto-generated key
  skyshooter serve --ssh :2222               # Listen on port 2222
  skyshooter serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("skyshooter-ssh")

	shooterCfg, err := loadShooterConfig()
	exitOnError("loading config", err)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game.RepeatWindow = shooterCfg.Timing.KeyRepeatWindow
	cfg.Game.FireRearmWindow = shooterCfg.Timing.FireRearmWindow

	server, err := tui.NewSSHServer(cfg, logger)
	exitOnError("creating server", err)

	fmt.Printf("Starting Sky Shooter SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitOnError("serving", server.ListenAndServe(ctx))
}
