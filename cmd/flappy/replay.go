package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Load a recorded run, feed its inputs into a fresh simulation and check
that the outcome matches what was recorded. The run's own configuration
and seed are used; --config and --seed are ignored.

Examples:
  flappy replay 6f1c2a9e-3a55-4d1e-9a0b-2f3f6d1f0c11
  flappy replay 6f1c2a9e-3a55-4d1e-9a0b-2f3f6d1f0c11 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(config.DefaultFlappyConfig(), os.Stderr, "")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	j, err := store.LoadRun(args[0])
	if err != nil {
		return err
	}

	snap, err := replay.Play(j, logger)
	if err != nil {
		return err
	}
	fmt.Printf("run %s\n", j.ID)
	fmt.Printf("  recorded  score %d, %d ticks, %s\n", j.Score, j.Ticks, j.Phase)
	fmt.Printf("  replayed  score %d, %d ticks, %s\n", snap.Score, snap.Tick, snap.Phase)

	if err := replay.Check(j, snap); err != nil {
		return err
	}
	fmt.Println("  outcome matches")
	return nil
}
