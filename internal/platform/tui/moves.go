package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexfleet/internal/storage"
)

// Move log layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show session list sidebar
	sidebarWidth       = 24 // Width of session list sidebar
	maxSessions        = 50 // Max sessions to list
)

// MovesKeyMap defines the key bindings for the move log.
type MovesKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSession key.Binding
	PrevSession key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MovesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSession, k.PrevSession, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k MovesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSession, k.PrevSession},
		{k.Back, k.Quit},
	}
}

// DefaultMovesKeyMap returns default key bindings.
func DefaultMovesKeyMap() MovesKeyMap {
	return MovesKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSession: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next session"),
		),
		PrevSession: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev session"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "m", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MovesModel is the Bubble Tea model for browsing the move log.
type MovesModel struct {
	sessions    []storage.SessionSummary
	cursor      int
	store       *storage.Store
	moves       []storage.Move
	loadErr     error
	table       table.Model
	help        help.Model
	keys        MovesKeyMap
	width       int
	height      int
	standalone  bool // Quit the program on back instead of returning to the map
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewMovesModel creates a move log browser opened at sessionID. An empty
// sessionID opens the most recent session.
func NewMovesModel(store *storage.Store, sessionID string, width, height int, standalone bool) MovesModel {
	h := help.New()
	h.ShowAll = false

	m := MovesModel{
		store:       store,
		keys:        DefaultMovesKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		standalone:  standalone,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		sessions, err := store.Sessions(maxSessions)
		if err != nil {
			m.loadErr = err
		}
		m.sessions = sessions
	}

	if sessionID != "" {
		m.cursor = -1
		for i, s := range m.sessions {
			if s.SessionID == sessionID {
				m.cursor = i
				break
			}
		}
		if m.cursor < 0 {
			m.sessions = append([]storage.SessionSummary{{SessionID: sessionID}}, m.sessions...)
			m.cursor = 0
		}
	}

	m.table = m.createTable()
	m.Reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *MovesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Ship", Width: 14},
		{Title: "Action", Width: 10},
		{Title: "From", Width: 6},
		{Title: "To", Width: 6},
		{Title: "Facing", Width: 6},
		{Title: "Time", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SessionID returns the session being shown, or empty if there is none.
func (m MovesModel) SessionID() string {
	if m.cursor < 0 || m.cursor >= len(m.sessions) {
		return ""
	}
	return m.sessions[m.cursor].SessionID
}

// Moves returns the moves currently listed.
func (m MovesModel) Moves() []storage.Move {
	return m.moves
}

// Reload re-reads the current session's moves from the store.
func (m *MovesModel) Reload() {
	m.moves = nil
	if id := m.SessionID(); id != "" && m.store != nil {
		moves, err := m.store.Moves(id)
		if err != nil {
			m.loadErr = err
		} else {
			m.moves = moves
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current moves, newest last.
func (m *MovesModel) updateTableRows() {
	rows := make([]table.Row, len(m.moves))
	for i, mv := range m.moves {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			mv.Ship,
			mv.Action,
			mv.From.Label(),
			mv.To.Label(),
			mv.Facing.String(),
			mv.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

// Init initializes the move log model.
func (m MovesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the move log.
func (m MovesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextSession):
			if len(m.sessions) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sessions)
				m.Reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevSession):
			if len(m.sessions) > 0 {
				m.cursor--
				if m.cursor < 0 {
					m.cursor = len(m.sessions) - 1
				}
				m.Reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to the table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the move log.
func (m MovesModel) View() string {
	if m.quitting || (m.goingBack && m.standalone) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "MOVE LOG"
	if id := m.SessionID(); id != "" {
		title = fmt.Sprintf("MOVE LOG - %s", id)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the session list.
func (m MovesModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Sessions\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.sessions {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := s.SessionID
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m MovesModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No move log configured.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the move log:\n" + m.loadErr.Error())
	case len(m.moves) == 0:
		return emptyStyle.Render("No moves recorded yet.")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user wants to go back to the map.
func (m MovesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m MovesModel) IsQuitting() bool {
	return m.quitting
}

// RunMoves runs the move log browser on its own.
func RunMoves(store *storage.Store, sessionID string, width, height int) error {
	model := NewMovesModel(store, sessionID, width, height, true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
