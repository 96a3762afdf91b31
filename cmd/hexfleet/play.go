package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/platform/tui"
	"github.com/vovakirdan/hexfleet/internal/registry"
	"github.com/vovakirdan/hexfleet/internal/ship"
	"github.com/vovakirdan/hexfleet/internal/storage"
)

var (
	flagScenarioFile string
	flagSpecDir      string
	flagSession      string
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Open a scenario on the map",
	Long: `Open the map viewer with the ships of a scenario (default: duel).

Controls:
  w e d s a q  - Move the cursor one hex: A (up), B, C, D (down), E, F
  Arrows       - Pan the map
  Tab/S-Tab    - Select the next/previous ship
  f            - Move the selected ship forward
  [ ]          - Turn the selected ship left/right
  c            - Center on the cursor
  m            - Move log
  ?            - All keys
  x/Ctrl+C     - Quit

Moves are written to the move log (--db). Pass --session to continue an
earlier session from its logged positions.

Examples:
  hexfleet play
  hexfleet play patrol --edge 4
  hexfleet play --scenario-file ./ambush.yaml --specs ./ships
  hexfleet play duel --session local-1718000000`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScenarioFile, "scenario-file", "", "Path to a scenario YAML file")
	playCmd.Flags().StringVar(&flagSpecDir, "specs", "", "Directory searched for ship specs first")
	playCmd.Flags().StringVar(&flagSession, "session", "", "Resume a logged session")
}

func runPlay(_ *cobra.Command, args []string) {
	scenarioID := "duel"
	if len(args) > 0 {
		scenarioID = args[0]
	}

	fleet, scenarioID, err := loadFleet(scenarioID)
	if err != nil {
		fail(err)
	}

	width, height := terminalSize()

	// Open the move log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open move log", "path", flagDBPath, "error", err)
		// Continue without a move log - the map still works
		store = nil
	}

	logger.Debug("starting map", "scenario", scenarioID, "ships", fleet.Len(), "edge", flagEdge)

	runErr := tui.Run(fleet, tui.Options{
		Edge:      flagEdge,
		Scenario:  scenarioID,
		SessionID: flagSession,
		User:      os.Getenv("USER"),
		Store:     store,
		Resume:    flagSession != "",
		Width:     width,
		Height:    height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail(fmt.Errorf("running map: %w", runErr))
	}
}

// loadFleet builds the fleet from --scenario-file or a registered scenario.
func loadFleet(id string) (*ship.Fleet, string, error) {
	if flagScenarioFile != "" {
		sc, err := config.LoadScenario(flagScenarioFile, "")
		if err != nil {
			return nil, "", err
		}
		fleet, err := ship.NewFleet(sc, registry.SpecLoader(flagSpecDir))
		return fleet, sc.ID, err
	}

	if !registry.Exists(id) {
		return nil, "", fmt.Errorf("unknown scenario %q (run 'hexfleet list' to see scenarios)", id)
	}
	fleet, err := registry.Create(id, flagSpecDir)
	return fleet, id, err
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
