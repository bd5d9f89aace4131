package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/face-flappy/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying the search order:
--config, ~/.flappy/configs/flappy.yaml, ./configs/flappy.yaml, built-in defaults.

The output is a complete config file and can be saved and edited.
With --defaults the built-in file is printed as shipped, comments included.

Examples:
  flappy config
  flappy config --defaults
  flappy config --config ./my-flappy.yaml
  flappy config > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead of the effective config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
