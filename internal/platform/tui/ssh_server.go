package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/lawn-defense/internal/core"
	"github.com/vovakirdan/lawn-defense/internal/registry"
	"github.com/vovakirdan/lawn-defense/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.lawn/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// TickRate is the simulation rate of every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives server and session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.lawn/scores.db",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the game over SSH, one independent run per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A scores database that cannot be opened only disables persistence.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "lawn-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".lawn", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
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
	opts := GameOptions{
		Store:  s.store,
		Logger: s.logger.With("user", sess.User()),
		Player: sess.User(),
	}

	return NewSessionModel(cfg, opts), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel drives one SSH session: menu -> game or scoreboard -> menu.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     GameOptions
	screen   sessionScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session starting at the title menu.
func NewSessionModel(cfg core.RuntimeConfig, opts GameOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case MenuPlay:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.opts.Logger.Error("cannot start game", "error", err)
			return m.backToMenu()
		}
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.game = NewGameModel(game, cfg, m.opts)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.BackToMenu():
		return m.backToMenu()
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsGoingBack():
		return m.backToMenu()
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
