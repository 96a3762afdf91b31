package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexfleet/internal/registry"
)

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	items    []registry.ScenarioInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	theme    Theme
	quitting bool
	selected *registry.ScenarioInfo // Set when user selects a scenario
}

// NewMenuModel creates a new menu model listing the registered scenarios.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(t.MenuTitle.Render(centerText("  H E X F L E E T  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scenario", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s (%d ships)  ", item.Title, item.Ships)
		style := t.MenuItemNormal
		if i == m.cursor {
			style = t.MenuItemActive
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		desc := strings.TrimSpace(m.items[m.cursor].Description)
		b.WriteString(t.MenuDescription.Render(centerText(desc, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, t.Help.Render(m.help.View(m.keys))))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected scenario, or nil if none is selected.
func (m MenuModel) Selected() *registry.ScenarioInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
