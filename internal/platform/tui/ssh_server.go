package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Game holds the per-session model options.
	Game Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:         ":23234",
		IdleTimeout:     30 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		TickRate:        60,
		Game: Options{
			RepeatWindow:    DefaultRepeatWindow,
			FireRearmWindow: DefaultFireRearmWindow,
		},
	}
}

// SSHServer serves the shooter over SSH. Every connection gets its own
// menu and World; sessions share only the read-only config.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger gets a default one.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skyshooter-ssh",
		})
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	cfg.Game.Embedded = true

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults the key to ~/.arcade/host_key and makes
// sure its directory exists. Wish generates the key on first use.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	return NewSessionModel(cfg, s.config.Game), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs connects and disconnects with the live count.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()

		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...", "active", s.active.Load())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
