package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"turmas/internal/config"
	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/services"
)

const shutdownTimeout = 30 * time.Second

// Options configures the sessions served over SSH
type Options struct {
	// AuthorizedKeysPath defaults to ~/.ssh/authorized_keys
	AuthorizedKeysPath string
	Display            domain.DisplayOptions
	ErrorClearDelay    time.Duration
	Grid               domain.GridConfig
	HistoryDepth       int
	// HostKeyPath defaults to $TURMAS_HOME/ssh/id_ed25519
	HostKeyPath string
	Keys        config.KeyBindingsConfig
	Palette     []string
	Problems    []string
}

// Server serves the timetable TUI over SSH. Every connection gets its own
// Timetable over the shared index; save slots are shared.
type Server struct {
	address    string
	index      *domain.ScheduleIndex
	opts       Options
	slots      *services.SlotService
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance. slots may be nil, which
// disables save slots for remote sessions.
func NewServer(host, port string, index *domain.ScheduleIndex, slots *services.SlotService, opts Options) (*Server, error) {
	if opts.HostKeyPath == "" {
		opts.HostKeyPath = filepath.Join(config.GetTurmasHome(), "ssh", "id_ed25519")
	}
	if opts.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}
	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address: net.JoinHostPort(host, port),
		index:   index,
		opts:    opts,
		slots:   slots,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port
func (s *Server) Address() string {
	return s.address
}

// Start serves until ctx is cancelled or the process gets SIGINT/SIGTERM
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("ssh server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
