package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
	"github.com/vovakirdan/face-flappy/internal/storage"
)

var (
	flagSimRuns      int
	flagSimMaxTicks  int
	flagSimFormat    string
	flagSimRecord    bool
	flagSimCharacter string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless sessions with the autopilot",
	Long: `Run sessions without a terminal UI. A deterministic autopilot flaps
toward the next gap, and frames run as fast as they can be computed.

Run i uses seed+i, so the same --seed always reproduces the same results.
A run that reaches --max-ticks is stopped and reported with cause "timeout".

Examples:
  flappy simulate
  flappy simulate --runs 20 --seed 7
  flappy simulate --format yaml --max-ticks 5000
  flappy simulate --record --character guruji`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of sessions to run")
	simulateCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 10000, "Stop a run after this many playing ticks")
	simulateCmd.Flags().StringVar(&flagSimFormat, "format", "text", "Output format: text or yaml")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record finished runs in the scores database")
	simulateCmd.Flags().StringVar(&flagSimCharacter, "character", "", "Character recorded with --record (default: first in roster)")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Run   int    `yaml:"run"`
	Seed  int64  `yaml:"seed"`
	Score int    `yaml:"score"`
	Ticks int    `yaml:"ticks"`
	Cause string `yaml:"cause"`
}

// simReport is the full output of a simulate invocation.
type simReport struct {
	Runs    []simResult `yaml:"runs"`
	Best    int         `yaml:"best"`
	Average float64     `yaml:"average"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagSimRuns)
	}
	if flagSimFormat != "text" && flagSimFormat != "yaml" {
		return fmt.Errorf("unknown format %q (use text or yaml)", flagSimFormat)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}

	var store *storage.Store
	character := ""
	if flagSimRecord {
		character = flagSimCharacter
		if character == "" && len(cfg.Characters) > 0 {
			character = cfg.Characters[0].ID
		}
		if _, err := findCharacter(cfg, character); err != nil {
			return err
		}
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	base := resolveSeed()
	report := simReport{}
	pilot := flappy.DefaultAutopilot()

	for i := 0; i < flagSimRuns; i++ {
		seed := base + int64(i)
		game, err := newGame(cfg, seed)
		if err != nil {
			return err
		}
		driver := flappy.NewDriver(game, logger.With("run", i+1))

		snap, err := simulateRun(cmd, driver, pilot, flagSimMaxTicks)
		if err != nil {
			return err
		}

		res := simResult{Run: i + 1, Seed: seed, Score: snap.Score, Ticks: snap.Tick, Cause: snap.Cause.String()}
		if snap.Phase != flappy.PhaseGameOver {
			res.Cause = "timeout"
		}
		report.Runs = append(report.Runs, res)
		report.Best = max(report.Best, res.Score)
		report.Average += float64(res.Score)

		if store != nil && snap.Phase == flappy.PhaseGameOver {
			run := storage.Run{Character: character, Score: res.Score, Ticks: res.Ticks, Cause: res.Cause, Seed: seed}
			if _, err := store.SaveRun(run); err != nil {
				return err
			}
		}
	}
	report.Average /= float64(len(report.Runs))

	return writeReport(cmd.OutOrStdout(), report)
}

// simulateRun drives one session through Driver.Run until the run ends or
// reaches maxTicks.
func simulateRun(cmd *cobra.Command, d *flappy.Driver, pilot flappy.Autopilot, maxTicks int) (flappy.Snapshot, error) {
	// A closed channel never blocks, so every refresh fires immediately.
	refresh := make(chan time.Time)
	close(refresh)

	d.Send(core.ActionConfirm)
	err := d.Run(cmd.Context(), refresh, func(s flappy.Snapshot) bool {
		if s.Phase == flappy.PhaseGameOver {
			return false
		}
		if s.Phase == flappy.PhasePlaying && s.Tick >= maxTicks {
			return false
		}
		if pilot.Decide(s) {
			d.Send(core.ActionJump)
		}
		return true
	})
	return d.Snapshot(), err
}

// writeReport prints the report in the selected format.
func writeReport(w io.Writer, report simReport) error {
	if flagSimFormat == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "  %-4s  %-20s  %-6s  %-7s  %s\n", "Run", "Seed", "Score", "Ticks", "Cause")
	fmt.Fprintf(w, "  %-4s  %-20s  %-6s  %-7s  %s\n", "---", "----", "-----", "-----", "-----")
	for _, r := range report.Runs {
		fmt.Fprintf(w, "  %-4d  %-20d  %-6d  %-7d  %s\n", r.Run, r.Seed, r.Score, r.Ticks, r.Cause)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Average: %.2f\n", report.Best, report.Average)
	return nil
}
