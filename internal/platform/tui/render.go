package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexfleet/internal/board"
)

// colorStyles maps board.Color to lipgloss styles.
var colorStyles = map[board.Color]lipgloss.Style{
	board.ColorDefault:  lipgloss.NewStyle(),
	board.ColorGrid:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	board.ColorLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	board.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	board.ColorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	board.ColorFriendly: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	board.ColorHostile:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	board.ColorPath:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderCanvas converts a Canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *board.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			startColor := c.GetCell(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[board.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
