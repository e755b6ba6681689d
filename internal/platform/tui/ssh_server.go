package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/nexus-breakout/internal/config"
	"github.com/vovakirdan/nexus-breakout/internal/core"
	"github.com/vovakirdan/nexus-breakout/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // generated on first start; empty means ~/.nexus/host_key
	DBPath      string        // run history shared by every session
	IdleTimeout time.Duration // idle sessions are closed after this
	MaxSessions int           // concurrent games; 0 means unlimited
	TickRate    int
	Rules       config.BreakoutConfig
	Logger      *log.Logger // nil logs to stderr
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.nexus/runs.db",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		TickRate:    60,
		Rules:       config.DefaultBreakoutConfig(),
	}
}

// SSHServer serves the game over SSH. Every session runs its own engine;
// only the run history is shared.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	log    *log.Logger
	active atomic.Int32
}

// NewSSHServer creates a server. A run history that cannot be opened is
// logged and the server runs without one.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "nexus-ssh"})
	}
	srv := &SSHServer{cfg: cfg, log: cfg.Logger}

	if store, err := storage.Open(cfg.DBPath); err != nil {
		srv.log.Warn("run history unavailable, scores will not be kept", "db", cfg.DBPath, "error", err)
	} else {
		srv.store = store
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	// Middlewares run last to first: log, admit, require a PTY, then play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.newSession),
			activeterm.Middleware(),
			srv.admit,
			srv.logSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("ssh: create server: %w", err)
	}
	srv.server = server
	return srv, nil
}

func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: home directory: %w", err)
		}
		path = filepath.Join(home, ".nexus", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the menu-driven session for one connection, playing
// under the SSH user name.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	model := NewSessionModel(SessionOptions{
		Rules:  s.cfg.Rules,
		Store:  s.store,
		Logger: s.log.With("user", sess.User()),
		Player: sess.User(),
	}, core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// admit turns sessions away once MaxSessions games are running.
func (s *SSHServer) admit(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)
		if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
			s.log.Warn("session rejected, server full", "user", sess.User(), "active", n-1)
			wish.Fatalln(sess, "nexus: server is full, try again later")
			return
		}
		next(sess)
	}
}

func (s *SSHServer) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.log.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.log.Info("session ended", "user", sess.User(), "duration", time.Since(start).Round(time.Second))
	}
}

// Active returns the number of sessions currently admitted or waiting
// for admission.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.log.Info("listening", "address", s.cfg.Address, "max_sessions", s.cfg.MaxSessions)
	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		s.closeStore()
		return fmt.Errorf("ssh: serve: %w", err)
	case <-ctx.Done():
	}
	s.log.Info("shutting down", "active", s.Active())
	return s.Shutdown()
}

// Shutdown stops accepting sessions, waits up to ten seconds for running
// ones and closes the run history.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn("closing run history", "error", err)
		}
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
