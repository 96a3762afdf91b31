package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexfleet/internal/hex"
)

// MapKeyMap defines the key bindings for the map viewer.
// The six cursor keys sit around S on a QWERTY keyboard, one per hex side.
type MapKeyMap struct {
	Facings   [6]key.Binding // indexed by hex.Facing
	PanUp     key.Binding
	PanDown   key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding
	NextShip  key.Binding
	PrevShip  key.Binding
	Forward   key.Binding
	TurnLeft  key.Binding
	TurnRight key.Binding
	Center    key.Binding
	Moves     key.Binding
	Help      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MapKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextShip, k.Forward, k.TurnLeft, k.TurnRight, k.Moves, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MapKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Facings[:],
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight, k.Center},
		{k.NextShip, k.PrevShip, k.Forward, k.TurnLeft, k.TurnRight},
		{k.Moves, k.Help, k.Back, k.Quit},
	}
}

// DefaultMapKeyMap returns default key bindings.
func DefaultMapKeyMap() MapKeyMap {
	facing := func(k, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}

	return MapKeyMap{
		Facings: [6]key.Binding{
			facing("w", "cursor A (up)"),
			facing("e", "cursor B"),
			facing("d", "cursor C"),
			facing("s", "cursor D (down)"),
			facing("a", "cursor E"),
			facing("q", "cursor F"),
		},
		PanUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "pan right"),
		),
		NextShip: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next ship"),
		),
		PrevShip: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev ship"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "forward"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "turn right"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center"),
		),
		Moves: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "ctrl+c"),
			key.WithHelp("x", "quit"),
		),
	}
}

// FacingFor returns the cursor direction bound to msg, if any.
func (k MapKeyMap) FacingFor(msg tea.KeyMsg) (hex.Facing, bool) {
	for _, f := range hex.Facings() {
		if key.Matches(msg, k.Facings[f]) {
			return f, true
		}
	}
	return 0, false
}

// MenuKeyMap defines the key bindings for the scenario menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
