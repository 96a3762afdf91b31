package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenarios and ship specs",
	Long:  `Shows the registered scenarios and the built-in ship specs.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Ships", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, s.ID, s.Ships, s.Title)
	}

	fmt.Println()
	fmt.Println("Ship specs:")
	for _, name := range config.DefaultShipNames() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Run 'hexfleet play <id>' to open a scenario.")
}
