package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available skies",
	Long:  `Shows a list of all weather scenes, in the order the next-weather key cycles through them.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	ids := registry.Ordered()
	if len(ids) == 0 {
		fmt.Println("No skies available.")
		return
	}

	titles := make(map[string]string)
	for _, info := range registry.List() {
		titles[info.ID] = info.Title
	}

	fmt.Println("Available skies:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, id := range ids {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, id := range ids {
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, titles[id])
	}

	fmt.Println()
	fmt.Println("Run 'arena-weather watch <id>' to watch a sky.")
}
