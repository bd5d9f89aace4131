// flappy is a terminal Flappy Bird-style game with a deterministic simulation core.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy simulate          - Run headless sessions with the autopilot
//	flappy scores            - Show recorded runs
//	flappy config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set display refresh rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//
// Every global flag also reads a FLAPPY_* environment variable for its default.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/face-flappy/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// runtimeEnvErr holds a malformed FLAPPY_* variable, reported before any
// command runs.
var runtimeEnvErr error

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through gaps in your terminal",
	Long: `Flappy is a terminal game: the bird falls under gravity, each flap
sends it upward, and every obstacle cleared scores a point.

Available commands:
  play      - Play in the terminal
  simulate  - Run headless sessions with the built-in autopilot
  scores    - View recorded runs
  config    - Print the effective game configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy simulate --runs 10 --format yaml
  flappy scores --character guruji`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return runtimeEnvErr
	},
}

func init() {
	// Environment variables provide the flag defaults.
	rt, err := config.LoadRuntime()
	if err != nil {
		runtimeEnvErr = err
		rt = config.Runtime{FPS: 60, DBPath: "~/.flappy/scores.db", LogLevel: "info"}
	}

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", rt.FPS, "Display refresh rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", rt.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", rt.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", rt.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", rt.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", rt.LogFile, "Log file used while the terminal UI is running")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
