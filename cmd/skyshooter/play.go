package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/platform/tui"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to skyshooter.

Controls:
  Arrows/WASD/hjkl - Steer
  Space            - Fire
  Mouse drag       - Steer with the joystick (bottom left)
  Mouse click      - Fire (outside the joystick)
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  skyshooter play
  skyshooter play skyshooter_classic
  skyshooter play --config ./my-shooter.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// modeArg returns the requested mode or the default one.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return skyshooter.GameID
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	logger := newLogger("skyshooter")

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyshooter list' to see available modes.")
		os.Exit(1)
	}

	shooterCfg, err := loadShooterConfig()
	exitOnError("loading config", err)

	game, err := registry.Create(gameID)
	exitOnError("creating game", err)

	state, err := tui.Run(game, terminalConfig(), tui.Options{
		RepeatWindow:    shooterCfg.Timing.KeyRepeatWindow,
		FireRearmWindow: shooterCfg.Timing.FireRearmWindow,
	})
	exitOnError("running game", err)

	logger.Info("game over", "mode", gameID, "score", state.Score, "ticks", state.Tick)
}
