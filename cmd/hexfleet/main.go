// hexfleet is a terminal hex map for starship movement on a 60x30 board.
//
// Usage:
//
//	hexfleet info <hex>             - Describe a hex and its neighbors
//	hexfleet distance <a> <b>       - Hexes between two hexes
//	hexfleet bearing <a> <b>        - Angle and bearing sector from a to b
//	hexfleet locate <x> <y>         - Hex under a screen point
//	hexfleet line <a> <b>           - Hexes on the line from a to b
//	hexfleet within <hex> <n>       - Hexes within n of a hex
//	hexfleet list                   - List scenarios
//	hexfleet play [scenario]        - Open the map viewer
//	hexfleet menu                   - Pick a scenario interactively
//	hexfleet serve                  - Start SSH server for remote play
//	hexfleet moves [session]        - Show the move log
//
// Global flags:
//
//	--db <path>     - Move log database (default: ~/.hexfleet/moves.db)
//	--edge <len>    - Hex edge length (default: 5)
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/platform/tui"
)

var (
	// Global flags
	flagDBPath string
	flagEdge   float64
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hexfleet",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexfleet",
	Short: "hexfleet - starship movement on a hex map",
	Long: `hexfleet is a terminal hex map for a 60x30 board of flat-topped hexes.
Hexes are named by four-digit labels, column then row, starting at 0101.

Available commands:
  info, distance, bearing, locate, line, within - hex geometry
  list     - Show all scenarios
  play     - Open a scenario on the map
  menu     - Interactive scenario picker
  serve    - Start SSH server for remote play
  moves    - View the move log

Examples:
  hexfleet distance 0101 0110
  hexfleet bearing 4002 4001
  hexfleet play duel
  hexfleet serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexfleet/moves.db", "Path to move log database")
	rootCmd.PersistentFlags().Float64Var(&flagEdge, "edge", tui.DefaultEdge, "Hex edge length (terminal columns on the map)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(bearingCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(withinCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(movesCmd)
}

// fail prints an error the way every command reports one and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
