package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/platform/tui"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After quitting a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit

Examples:
  skyshooter menu
  skyshooter menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger("skyshooter")

	shooterCfg, err := loadShooterConfig()
	exitOnError("loading config", err)

	cfg := terminalConfig()
	opts := tui.Options{
		RepeatWindow:    shooterCfg.Timing.KeyRepeatWindow,
		FireRearmWindow: shooterCfg.Timing.FireRearmWindow,
	}

	for {
		menuResult, menuErr := tui.RunMenu(cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			break
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		game, createErr := registry.Create(menuResult.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			continue
		}

		state, runErr := tui.Run(game, cfg, opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
		logger.Debug("game over", "mode", menuResult.GameID, "score", state.Score, "ticks", state.Tick)
	}
}
