// skyshooter is a vertical arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	skyshooter list              - List available modes
//	skyshooter play [mode]       - Play in the terminal
//	skyshooter menu              - Pick a mode interactively
//	skyshooter window [mode]     - Play in a desktop window
//	skyshooter serve             - Start SSH server for remote play
//	skyshooter sim               - Run a headless simulation
//	skyshooter config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom shooter config YAML
//	--policy <name>     - Collision hit policy: capped or naive
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPolicy   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyshooter",
	Short: "Sky Shooter - steer, fire, destroy the descending targets",
	Long: `Sky Shooter is a small vertical arcade shooter. Steer the aircraft
with the on-screen joystick (mouse, touch or arrow keys), fire with space
or a tap, and shoot down the targets before they pass.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  menu     - Interactive mode picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation and print the final snapshot
  config   - Print the effective configuration

Examples:
  skyshooter play
  skyshooter play skyshooter_classic --fps 30
  skyshooter window --policy naive
  skyshooter sim --ticks 3600 --seed 42
  skyshooter serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Hit policy override: capped or naive")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger for one surface at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadShooterConfig applies --config and --policy to the game package and
// loads the configuration every mode will use.
func loadShooterConfig() (config.ShooterConfig, error) {
	if flagPolicy != "" && !config.HitPolicy(flagPolicy).Valid() {
		return config.ShooterConfig{}, fmt.Errorf("invalid --policy %q (want %q or %q)",
			flagPolicy, config.HitPolicyCapped, config.HitPolicyNaive)
	}

	skyshooter.SetConfigPath(flagConfig)
	skyshooter.SetHitPolicy(flagPolicy)

	cfg, err := skyshooter.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// exitOnError prints err the arcade way and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}
