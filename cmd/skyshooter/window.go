package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/platform/gui"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a window sized to the playing field and play there.

Controls:
  Mouse/touch on the joystick - Steer (drag)
  Click/tap elsewhere         - Fire
  Arrows/WASD                 - Steer
  Space                       - Fire
  P/Esc                       - Pause
  R                           - Restart
  Q                           - Quit

Examples:
  skyshooter window
  skyshooter window skyshooter_classic --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := modeArg(args)
	logger := newLogger("skyshooter-gui")

	shooterCfg, err := loadShooterConfig()
	exitOnError("loading config", err)

	created, err := registry.Create(gameID)
	exitOnError("creating game", err)

	game, ok := created.(*skyshooter.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	runtime := core.RuntimeConfig{
		ScreenW:  int(shooterCfg.Field.Width),
		ScreenH:  int(shooterCfg.Field.Height),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	exitOnError("running window", gui.Run(game, runtime, logger))
}
