package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/hex"
)

var (
	flagFacing    string
	flagOriginX   float64
	flagOriginY   float64
	flagFitHeight float64
)

var infoCmd = &cobra.Command{
	Use:   "info <hex>",
	Short: "Describe a hex and its neighbors",
	Long: `Show a hex's zero-based column and row, its screen center at --edge,
and the hex across each of its six sides.

Examples:
  hexfleet info 0730
  hexfleet info 101 --edge 10`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeInfo(os.Stdout, args[0], flagEdge); err != nil {
			fail(err)
		}
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance <a> <b>",
	Short: "Count the hexes between two hexes",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeDistance(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

var bearingCmd = &cobra.Command{
	Use:   "bearing <a> <b>",
	Short: "Show the angle and bearing sector from a to b",
	Long: `Show the angle from hex a to hex b (0-359, counterclockwise from
screen right) and the bearing sector it falls in. Sectors are the six hex
sides A-F clockwise from straight up, plus the six boundaries between them.

With --facing, also show the bearing relative to a ship at a with that
facing, and the shields it exposes.

Examples:
  hexfleet bearing 4002 4001
  hexfleet bearing 2111 2106 --facing D`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeBearing(os.Stdout, args[0], args[1], flagFacing); err != nil {
			fail(err)
		}
	},
}

var locateCmd = &cobra.Command{
	Use:   "locate <x> <y>",
	Short: "Find the hex under a screen point",
	Long: `Find the hex containing a screen point. The board's top-left corner is
at --origin-x, --origin-y. Hexes have edge --edge, unless --fit-height sizes
them so the whole board is that tall.

Examples:
  hexfleet locate 30 30 --edge 60
  hexfleet locate 412 97 --origin-x 10 --origin-y 20 --fit-height 600`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeLocate(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

var lineCmd = &cobra.Command{
	Use:   "line <a> <b>",
	Short: "List the hexes on the line from a to b",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeLine(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

var withinCmd = &cobra.Command{
	Use:   "within <hex> <n>",
	Short: "List the hexes within n of a hex",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		if err := writeWithin(os.Stdout, args[0], args[1]); err != nil {
			fail(err)
		}
	},
}

func init() {
	bearingCmd.Flags().StringVar(&flagFacing, "facing", "", "Facing (A-F) of a ship at the first hex")
	locateCmd.Flags().Float64Var(&flagOriginX, "origin-x", 0, "Screen x of the board's top-left corner")
	locateCmd.Flags().Float64Var(&flagOriginY, "origin-y", 0, "Screen y of the board's top-left corner")
	locateCmd.Flags().Float64Var(&flagFitHeight, "fit-height", 0, "Size hexes to fit the board in this height")
}

func parseHexes(labels ...string) ([]hex.Address, error) {
	result := make([]hex.Address, len(labels))
	for i, l := range labels {
		a, err := hex.ParseLabel(l)
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

func writeInfo(w io.Writer, label string, edge float64) error {
	hexes, err := parseHexes(label)
	if err != nil {
		return err
	}
	a := hexes[0]

	fmt.Fprintf(w, "Hex %s\n", a.Label())
	fmt.Fprintf(w, "  column %d, row %d (zero-based), number %d\n", a.Col(), a.Row(), a.Number())
	if edge > 0 {
		c := hex.ToScreen(a, edge)
		fmt.Fprintf(w, "  center (%.2f, %.2f) at edge %g\n", c.X, c.Y, edge)
	}
	fmt.Fprintln(w, "  neighbors:")
	for _, f := range hex.Facings() {
		n, err := hex.Neighbor(a, f)
		if err != nil {
			fmt.Fprintf(w, "    %s  off board\n", f)
			continue
		}
		fmt.Fprintf(w, "    %s  %s\n", f, n.Label())
	}
	return nil
}

func writeDistance(w io.Writer, from, to string) error {
	hexes, err := parseHexes(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, hex.Distance(hexes[0], hexes[1]))
	return nil
}

func writeBearing(w io.Writer, from, to, facing string) error {
	hexes, err := parseHexes(from, to)
	if err != nil {
		return err
	}
	a, b := hexes[0], hexes[1]

	bearing := hex.BearingOf(a, b)
	fmt.Fprintf(w, "angle %d, bearing %s\n", hex.Angle(a, b), bearing)

	if facing == "" {
		return nil
	}
	f, err := hex.ParseFacing(facing)
	if err != nil {
		return err
	}
	rel := bearing.Relative(f)
	shields := make([]string, 0, 2)
	for _, sf := range rel.Facings() {
		shields = append(shields, fmt.Sprintf("#%d", int(sf)+1))
	}
	fmt.Fprintf(w, "relative to facing %s: %s (shield %s)\n", f, rel, strings.Join(shields, ", "))
	return nil
}

func writeLocate(w io.Writer, xs, ys string) error {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return fmt.Errorf("bad x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return fmt.Errorf("bad y %q: %w", ys, err)
	}

	origin := hex.Point{X: flagOriginX, Y: flagOriginY}
	layout := hex.LayoutForEdge(origin, flagEdge)
	if flagFitHeight > 0 {
		layout = hex.NewLayout(origin, flagFitHeight)
	}
	logger.Debug("locate", "x", x, "y", y, "edge", layout.Edge, "origin", origin)

	a, err := layout.Locate(hex.Point{X: x, Y: y})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, a.Label())
	return nil
}

func writeLine(w io.Writer, from, to string) error {
	hexes, err := parseHexes(from, to)
	if err != nil {
		return err
	}
	writeLabels(w, hex.Line(hexes[0], hexes[1]))
	return nil
}

func writeWithin(w io.Writer, center, ns string) error {
	hexes, err := parseHexes(center)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(ns)
	if err != nil {
		return fmt.Errorf("bad range %q: %w", ns, err)
	}
	writeLabels(w, hex.Within(hexes[0], n))
	return nil
}

func writeLabels(w io.Writer, hexes []hex.Address) {
	labels := make([]string, len(hexes))
	for i, a := range hexes {
		labels[i] = a.Label()
	}
	fmt.Fprintln(w, strings.Join(labels, " "))
}
