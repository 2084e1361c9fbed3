package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the shooter configuration as YAML after applying the search
order (--config, ~/.arcade/configs, ./configs, built-in defaults) and
the --policy override.

Use --defaults to print the built-in file, a good starting point for a
custom config.

Examples:
  skyshooter config
  skyshooter config --defaults > configs/skyshooter.yaml
  skyshooter config --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML(skyshooter.GameID))
		return err
	}

	cfg, err := loadShooterConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
