package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexfleet/internal/board"
	"github.com/vovakirdan/hexfleet/internal/hex"
	"github.com/vovakirdan/hexfleet/internal/ship"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

// DefaultEdge is the hex edge length, in terminal columns, used when none is given.
const DefaultEdge = 5.0

// Pan steps for the arrow keys, in character cells.
const (
	panColumns = 6
	panRows    = 3
)

// Options configures a map viewer.
type Options struct {
	Edge      float64
	Scenario  string
	SessionID string // Defaults to "<user>-<nanotime>"
	User      string
	Store     *storage.Store // Optional move log
	Resume    bool           // Restore ship positions from the log for SessionID
	Width     int
	Height    int
	Embedded  bool // Back returns to the caller instead of quitting
}

// MapModel is the Bubble Tea model for the hex map viewer.
type MapModel struct {
	fleet     *ship.Fleet
	store     *storage.Store
	sessionID string
	scenario  string
	edge      float64
	canvas    *board.Canvas
	camera    board.Camera
	cursor    hex.Address
	selected  int
	keys      MapKeyMap
	help      help.Model
	theme     Theme
	moves     *MovesModel
	width     int
	height    int
	status    string
	statusErr bool
	statusSeq int
	embedded  bool
	quitting  bool
	goingBack bool
}

// NewMapModel creates a map viewer for a fleet.
func NewMapModel(fleet *ship.Fleet, opts Options) MapModel {
	if !(opts.Edge > 0) {
		opts.Edge = DefaultEdge
	}
	if opts.SessionID == "" {
		user := opts.User
		if user == "" {
			user = "local"
		}
		opts.SessionID = fmt.Sprintf("%s-%d", user, time.Now().UnixNano())
	}

	m := MapModel{
		fleet:     fleet,
		store:     opts.Store,
		sessionID: opts.SessionID,
		scenario:  opts.Scenario,
		edge:      opts.Edge,
		canvas:    board.NewCanvas(opts.Width, opts.Height),
		keys:      DefaultMapKeyMap(),
		help:      help.New(),
		theme:     DefaultTheme(),
		width:     opts.Width,
		height:    opts.Height,
		embedded:  opts.Embedded,
	}
	m.help.Width = opts.Width

	if opts.Resume {
		m.resume()
	}
	m.startSession()

	if fleet.Len() > 0 {
		m.cursor = fleet.At(0).Position.Hex
	}
	m.camera = m.camera.CenterOn(m.cursor, m.edge, m.viewWidth(), m.viewHeight())
	return m
}

// resume moves ships to their last logged positions.
func (m *MapModel) resume() {
	if m.store == nil {
		return
	}
	for _, s := range m.fleet.Ships() {
		addr, facing, ok, err := m.store.LastPosition(m.sessionID, s.Name)
		if err != nil {
			m.setError(err)
			return
		}
		if ok {
			s.MoveTo(ship.Position{Hex: addr, Facing: facing})
		}
	}
}

// startSession logs the scenario's starting positions for a new session.
func (m *MapModel) startSession() {
	if m.store == nil {
		return
	}
	if err := m.store.StartSession(m.sessionID, m.scenario); err != nil {
		m.setError(err)
		return
	}
	for _, s := range m.fleet.Ships() {
		if _, ok, _ := m.lastLogged(s); ok {
			continue
		}
		m.record(s, storage.ActionStart, s.Position.Hex)
	}
}

func (m *MapModel) lastLogged(s *ship.Ship) (hex.Address, bool, error) {
	addr, _, ok, err := m.store.LastPosition(m.sessionID, s.Name)
	return addr, ok, err
}

// record appends a ship action to the move log, if there is one.
func (m *MapModel) record(s *ship.Ship, action string, from hex.Address) {
	if m.store == nil {
		return
	}
	_, err := m.store.RecordMove(storage.Move{
		SessionID: m.sessionID,
		Ship:      s.Name,
		Action:    action,
		From:      from,
		To:        s.Position.Hex,
		Facing:    s.Position.Facing,
	})
	if err != nil {
		m.setError(err)
	}
}

// Init initializes the model.
func (m MapModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m MapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.moves != nil {
		return m.updateMoves(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.camera = m.camera.Clamp(m.edge, m.viewWidth(), m.viewHeight())
		return m, nil

	case statusExpiredMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m MapModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if f, ok := m.keys.FacingFor(msg); ok {
		next, err := hex.Neighbor(m.cursor, f)
		if err != nil {
			return m, m.setStatus("edge of the map")
		}
		m.cursor = next
		m.follow()
		return m, nil
	}

	s := m.Selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		if m.embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.camera = m.camera.Clamp(m.edge, m.viewWidth(), m.viewHeight())

	case key.Matches(msg, m.keys.PanUp):
		m.camera = m.camera.Pan(0, -panRows, m.edge, m.viewWidth(), m.viewHeight())
	case key.Matches(msg, m.keys.PanDown):
		m.camera = m.camera.Pan(0, panRows, m.edge, m.viewWidth(), m.viewHeight())
	case key.Matches(msg, m.keys.PanLeft):
		m.camera = m.camera.Pan(-panColumns, 0, m.edge, m.viewWidth(), m.viewHeight())
	case key.Matches(msg, m.keys.PanRight):
		m.camera = m.camera.Pan(panColumns, 0, m.edge, m.viewWidth(), m.viewHeight())

	case key.Matches(msg, m.keys.Center):
		m.camera = m.camera.CenterOn(m.cursor, m.edge, m.viewWidth(), m.viewHeight())

	case key.Matches(msg, m.keys.NextShip), key.Matches(msg, m.keys.PrevShip):
		if n := m.fleet.Len(); n > 0 {
			step := 1
			if key.Matches(msg, m.keys.PrevShip) {
				step = n - 1
			}
			m.selected = (m.selected + step) % n
			m.cursor = m.Selected().Position.Hex
			m.follow()
		}

	case key.Matches(msg, m.keys.Forward):
		if s == nil {
			return m, nil
		}
		from := s.Position.Hex
		if err := s.MoveForward(); err != nil {
			return m, m.setStatus(fmt.Sprintf("%s cannot move %s off the map", s.Name, s.Position.Facing))
		}
		m.record(s, storage.ActionForward, from)
		m.cursor = s.Position.Hex
		m.follow()

	case key.Matches(msg, m.keys.TurnLeft), key.Matches(msg, m.keys.TurnRight):
		if s == nil {
			return m, nil
		}
		action := storage.ActionTurnRight
		if key.Matches(msg, m.keys.TurnLeft) {
			s.TurnLeft()
			action = storage.ActionTurnLeft
		} else {
			s.TurnRight()
		}
		m.record(s, action, s.Position.Hex)

	case key.Matches(msg, m.keys.Moves):
		mv := NewMovesModel(m.store, m.sessionID, m.width, m.height, false)
		m.moves = &mv
	}

	return m, nil
}

// handleMouse moves the cursor to the clicked hex.
func (m MapModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.viewHeight() {
		return m, nil
	}
	a, err := board.HexAt(m.camera, m.edge, msg.X, msg.Y)
	if err != nil {
		return m, nil
	}
	m.cursor = a
	return m, nil
}

// updateMoves forwards messages to the embedded move log.
func (m MapModel) updateMoves(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
	}

	next, cmd := m.moves.Update(msg)
	mv, ok := next.(MovesModel)
	if !ok {
		return m, cmd
	}
	if mv.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if mv.IsGoingBack() {
		m.moves = nil
		return m, nil
	}
	m.moves = &mv
	return m, cmd
}

// follow scrolls the camera to keep the cursor visible.
func (m *MapModel) follow() {
	m.camera = m.camera.Follow(m.cursor, m.edge, m.viewWidth(), m.viewHeight())
}

// setStatus shows a message and schedules its removal.
func (m *MapModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = false
	return expireStatusCmd(m.statusSeq)
}

// setError shows an error until the next status message.
func (m *MapModel) setError(err error) {
	m.statusSeq++
	m.status = err.Error()
	m.statusErr = true
}

// viewWidth and viewHeight give the map area, below which sit the status
// line and the help.
func (m MapModel) viewWidth() int {
	return max(m.width, 1)
}

func (m MapModel) viewHeight() int {
	return max(m.height-1-lipgloss.Height(m.helpView()), 1)
}

func (m MapModel) helpView() string {
	return m.theme.Help.Render(m.help.View(m.keys))
}

// Selected returns the selected ship, or nil for an empty fleet.
func (m MapModel) Selected() *ship.Ship {
	if m.fleet.Len() == 0 {
		return nil
	}
	return m.fleet.At(m.selected)
}

// Cursor returns the hex under the cursor.
func (m MapModel) Cursor() hex.Address {
	return m.cursor
}

// Camera returns the current camera.
func (m MapModel) Camera() board.Camera {
	return m.camera
}

// SessionID returns the move log session of this viewer.
func (m MapModel) SessionID() string {
	return m.sessionID
}

// Status returns the current status message.
func (m MapModel) Status() string {
	return m.status
}

// ShowingMoves returns true while the move log is open.
func (m MapModel) ShowingMoves() bool {
	return m.moves != nil
}

// IsQuitting returns true if the user requested to quit entirely.
func (m MapModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if the user asked to leave the map.
func (m MapModel) IsGoingBack() bool {
	return m.goingBack
}

// markers returns one marker per ship. Ships of the selected ship's
// faction are friendly.
func (m MapModel) markers() []board.Marker {
	sel := m.Selected()
	faction := ""
	if sel != nil {
		faction = factionOf(sel.SpecName)
	}

	result := make([]board.Marker, 0, m.fleet.Len())
	for _, s := range m.fleet.Ships() {
		color := board.ColorHostile
		switch {
		case s == sel:
			color = board.ColorSelected
		case factionOf(s.SpecName) == faction:
			color = board.ColorFriendly
		}
		result = append(result, board.Marker{
			Hex:    s.Position.Hex,
			Facing: s.Position.Facing,
			Glyph:  s.Glyph(),
			Color:  color,
		})
	}
	return result
}

// factionOf returns the directory part of a spec name, "klingon" for "klingon/d7".
func factionOf(specName string) string {
	faction, _, _ := strings.Cut(specName, "/")
	return faction
}

// statusLine describes the selected ship and its relation to the cursor.
func (m MapModel) statusLine() string {
	t := m.theme
	sep := t.StatusSep.Render(" │ ")
	field := func(label, value string) string {
		return t.StatusLabel.Render(label+" ") + t.StatusValue.Render(value)
	}

	parts := []string{field("cursor", m.cursor.Label())}
	if occ := m.fleet.Occupant(m.cursor); occ != nil {
		parts[0] += t.StatusValue.Render(" " + occ.Name)
	}

	if s := m.Selected(); s != nil {
		e := s.Energy()
		head := t.StatusShip.Render(s.Name) + " " +
			field("at", s.Position.String()) + " " +
			field("spd", fmt.Sprintf("%d", s.Speed)) + " " +
			field("warp", fmt.Sprintf("%d", e.Warp))
		parts = append([]string{head}, parts...)

		if m.cursor != s.Position.Hex {
			shields := s.ShieldsFacing(m.cursor)
			nums := make([]string, len(shields))
			for i, n := range shields {
				nums[i] = fmt.Sprintf("#%d(%d)", n, s.Shields[n-1])
			}
			parts = append(parts,
				field("range", fmt.Sprintf("%d", hex.Distance(s.Position.Hex, m.cursor))),
				field("bearing", hex.BearingOf(s.Position.Hex, m.cursor).String()),
				field("rel", s.RelativeBearing(m.cursor).String()),
				field("shield", strings.Join(nums, " ")),
			)
		}
	}

	line := strings.Join(parts, sep)
	if m.status != "" {
		style := t.StatusValue
		if m.statusErr {
			style = t.StatusError
		}
		line += sep + style.Render(m.status)
	}
	return lipgloss.NewStyle().MaxWidth(m.viewWidth()).Render(line)
}

// View renders the current state to a string for display.
func (m MapModel) View() string {
	if m.quitting {
		return ""
	}
	if m.moves != nil {
		return m.moves.View()
	}

	m.canvas.Resize(m.viewWidth(), m.viewHeight())

	view := board.View{
		Edge:       m.edge,
		Camera:     m.camera,
		Cursor:     m.cursor,
		ShowCursor: true,
		Markers:    m.markers(),
	}
	if s := m.Selected(); s != nil && s.Position.Hex != m.cursor {
		view.Path = hex.Line(s.Position.Hex, m.cursor)
	}
	if err := board.Render(m.canvas, view); err != nil {
		return err.Error()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderCanvas(m.canvas),
		m.statusLine(),
		m.helpView(),
	)
}

// Run starts the Bubble Tea program with a map viewer.
func Run(fleet *ship.Fleet, opts Options) error {
	model := NewMapModel(fleet, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click a hex to move the cursor
	)

	_, err := p.Run()
	return err
}
