package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles for everything around the map itself.
type Theme struct {
	// Status bar
	StatusShip  lipgloss.Style
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	StatusSep   lipgloss.Style
	StatusError lipgloss.Style

	// Menu
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		StatusShip:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		StatusLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		StatusSep:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
