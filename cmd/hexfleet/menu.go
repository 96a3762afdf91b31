package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/platform/tui"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scenario from a menu",
	Long: `Start with a scenario picker. Leaving the map with Esc returns to the
menu; this is the same flow SSH users get from 'hexfleet serve'.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open scenario
  Q            - Quit`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSpecDir, "specs", "", "Directory searched for ship specs first")
}

func runMenu(_ *cobra.Command, _ []string) {
	width, height := terminalSize()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open move log", "path", flagDBPath, "error", err)
		store = nil
	}

	model := tui.NewSessionModel(tui.SessionConfig{
		Store:   store,
		SpecDir: flagSpecDir,
		Edge:    flagEdge,
		User:    os.Getenv("USER"),
		Width:   width,
		Height:  height,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail(fmt.Errorf("running menu: %w", runErr))
	}
}
