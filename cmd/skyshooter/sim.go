package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var (
	flagSimTicks   int
	flagSimFire    int
	flagSimSteer   string
	flagSimElapsed time.Duration
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run a headless simulation",
	Long: `Run the game without a display for a number of ticks with scripted
input, then print the final snapshot and totals as YAML.

Steering scripts:
  none   - Keep the joystick centered
  left, right, up, down - Hold one direction
  sweep  - Alternate left and right every two seconds

Examples:
  skyshooter sim --seed 42
  skyshooter sim --ticks 3600 --fire-every 8 --steer sweep
  skyshooter sim --elapsed 33ms --policy naive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimFire, "fire-every", 15, "Fire every N ticks (0 = never)")
	simCmd.Flags().StringVar(&flagSimSteer, "steer", "none", "Steering script: none, left, right, up, down, sweep")
	simCmd.Flags().DurationVar(&flagSimElapsed, "elapsed", 0, "Frame time reported each tick (0 = nominal)")
}

// simOptions scripts a headless run.
type simOptions struct {
	Ticks     int
	FireEvery int
	Steer     string
	Elapsed   time.Duration
}

// simResult is printed at the end of a run.
type simResult struct {
	Mode      string              `yaml:"mode"`
	Seed      int64               `yaml:"seed"`
	Ticks     int                 `yaml:"ticks"`
	Fired     int                 `yaml:"fired"`
	Spawned   int                 `yaml:"spawned"`
	Destroyed int                 `yaml:"destroyed"`
	Snapshot  skyshooter.Snapshot `yaml:"snapshot"`
}

// sweepPeriod is how long the sweep script holds each direction.
const sweepPeriod = 120

// steerActions returns the steering actions of a script at tick i.
func steerActions(script string, i int) ([]core.Action, error) {
	switch script {
	case "", "none":
		return nil, nil
	case "left":
		return []core.Action{core.ActionLeft}, nil
	case "right":
		return []core.Action{core.ActionRight}, nil
	case "up":
		return []core.Action{core.ActionUp}, nil
	case "down":
		return []core.Action{core.ActionDown}, nil
	case "sweep":
		if (i/sweepPeriod)%2 == 0 {
			return []core.Action{core.ActionLeft}, nil
		}
		return []core.Action{core.ActionRight}, nil
	}
	return nil, fmt.Errorf("unknown steering script %q", script)
}

// simulate runs game from a fresh reset with scripted input.
func simulate(game *skyshooter.Game, runtime core.RuntimeConfig, opts simOptions) (simResult, error) {
	if opts.Ticks < 0 {
		return simResult{}, fmt.Errorf("ticks must be non-negative, got %d", opts.Ticks)
	}
	if _, err := steerActions(opts.Steer, 0); err != nil {
		return simResult{}, err
	}

	game.Reset(runtime)
	res := simResult{Mode: game.ID(), Seed: runtime.Seed, Ticks: opts.Ticks}

	frame := core.NewInputFrame()
	for i := range opts.Ticks {
		frame.Clear()
		frame.Elapsed = opts.Elapsed

		if opts.FireEvery > 0 && i%opts.FireEvery == 0 {
			frame.Set(core.ActionFire)
			res.Fired++
		}
		steer, _ := steerActions(opts.Steer, i)
		for _, a := range steer {
			frame.Set(a)
		}

		step := game.Step(frame)
		res.Spawned += step.Spawned
		res.Destroyed += step.Destroyed
	}

	res.Snapshot = game.Snapshot()
	return res, nil
}

// writeSimResult prints res as a YAML document.
func writeSimResult(w io.Writer, res simResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return enc.Close()
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := modeArg(args)
	logger := newLogger("skyshooter")

	if _, err := loadShooterConfig(); err != nil {
		return err
	}

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*skyshooter.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be simulated", gameID)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	start := time.Now()
	res, err := simulate(game, runtime, simOptions{
		Ticks:     flagSimTicks,
		FireEvery: flagSimFire,
		Steer:     flagSimSteer,
		Elapsed:   flagSimElapsed,
	})
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "mode", gameID, "seed", seed, "ticks", res.Ticks, "took", time.Since(start))

	return writeSimResult(cmd.OutOrStdout(), res)
}
