package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. Each finished run is recorded and can be
replayed with 'flappy replay <id>'.

Controls:
  Space/Up/W    - Start / Flap
  R             - Restart (after game over)
  Q/Esc/Ctrl+C  - Quit
  Ctrl+S        - Save a screenshot

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.toml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// gameID is the registry entry that play runs.
const gameID = "flappy"

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("game %q is not registered", gameID)
	}

	// Loaded up front so a bad --config fails before the terminal is taken
	// and so the log level is known. The game reloads it from ConfigPath.
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs go to a file.
	logger, closeLog, err := newLogger(settings, nil, "~/.flappy/flappy.log")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
