// Package tui provides the Bubble Tea map viewer, the move log browser and
// the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status message stays on screen.
const statusTimeout = 3 * time.Second

// statusExpiredMsg clears the status message with the given sequence number.
type statusExpiredMsg int

// expireStatusCmd returns a command that expires status message seq.
func expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg(seq)
	})
}
