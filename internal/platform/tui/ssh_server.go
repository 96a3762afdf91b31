package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/hexfleet/internal/registry"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hexfleet/host_key.
	HostKeyPath string

	// DBPath is the path to the move log database.
	DBPath string

	// SpecDir is searched for ship specs before the built-in ones.
	SpecDir string

	// Edge is the hex edge length in terminal columns.
	Edge float64

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.hexfleet/moves.db",
		Edge:        DefaultEdge,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server hosting one map viewer per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger gets a default one writing to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hexfleet-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open move log", "error", err)
		// Continue without a move log
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hexfleet", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(SessionConfig{
		Store:   s.store,
		SpecDir: s.config.SpecDir,
		Edge:    s.config.Edge,
		User:    sshSession.User(),
		Width:   pty.Window.Width,
		Height:  pty.Window.Height,
		Logger:  s.logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("server error", "error", err)
			s.closeStore()
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionConfig configures one interactive session.
type SessionConfig struct {
	Store   *storage.Store
	SpecDir string
	Edge    float64
	User    string
	Width   int
	Height  int
	Logger  *log.Logger
}

// SessionModel manages the session flow: scenario menu -> map -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	config   SessionConfig
	menu     MenuModel
	mapView  *MapModel
	err      error
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	return SessionModel{
		config: cfg,
		menu:   NewMenuModel(cfg.Width, cfg.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Width = wsm.Width
		m.config.Height = wsm.Height
	}

	if m.mapView != nil {
		return m.updateMap(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	fleet, err := registry.Create(selected.ID, m.config.SpecDir)
	if err != nil {
		if m.config.Logger != nil {
			m.config.Logger.Error("cannot start scenario", "scenario", selected.ID, "error", err)
		}
		m.err = err
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, nil
	}

	mapView := NewMapModel(fleet, Options{
		Edge:     m.config.Edge,
		Scenario: selected.ID,
		User:     m.config.User,
		Store:    m.config.Store,
		Width:    m.config.Width,
		Height:   m.config.Height,
		Embedded: true,
	})
	if m.config.Logger != nil {
		m.config.Logger.Info("scenario started",
			"user", m.config.User,
			"scenario", selected.ID,
			"session", mapView.SessionID(),
		)
	}
	m.err = nil
	m.mapView = &mapView
	return m, mapView.Init()
}

// updateMap handles updates when the map is shown.
func (m SessionModel) updateMap(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.mapView.Update(msg)
	if mapModel, ok := newModel.(MapModel); ok {
		m.mapView = &mapModel
	}

	if m.mapView.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mapView.IsGoingBack() {
		m.mapView = nil
		m.menu = NewMenuModel(m.config.Width, m.config.Height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.mapView != nil {
		return m.mapView.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + DefaultTheme().StatusError.Render(m.err.Error())
	}
	return view
}
