package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows a list of all game modes registered with the shooter.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Description != "" {
			fmt.Fprintf(out, "  %-*s  (%s)\n", maxIDLen, "", g.Description)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'skyshooter play <id>' or 'skyshooter window <id>' to play.")
}
