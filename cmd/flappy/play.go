package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
	"github.com/vovakirdan/face-flappy/internal/platform/tui"
	"github.com/vovakirdan/face-flappy/internal/storage"
)

var flagPlayCharacter string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/Right  - Choose a character (start screen)
  Enter       - Start
  Space/Up/W  - Flap
  R           - Restart (after game over)
  M/Esc       - Back to the start screen (after game over)
  Tab         - High scores (start screen and game over)
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --character awara
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayCharacter, "character", "", "Character selected on the start screen")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagPlayCharacter != "" {
		if _, err := findCharacter(cfg, flagPlayCharacter); err != nil {
			return err
		}
	}

	// The terminal belongs to the renderer, so logs go to a file.
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile, "flappy")
	if err != nil {
		return err
	}

	seed := resolveSeed()
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	game, err := newGame(cfg, seed)
	if err != nil {
		return err
	}
	driver := flappy.NewDriver(game, logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	logger.Info("session started", "seed", seed, "fps", flagFPS)

	character := flagPlayCharacter
	for {
		result, err := tui.Run(tui.Session{
			Driver:    driver,
			Store:     store,
			Config:    rt,
			Character: character,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		if !result.OpenScoreboard {
			return nil
		}
		character = result.Character

		goBack, err := tui.RunScoreboard(store, cfg.Characters, rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
