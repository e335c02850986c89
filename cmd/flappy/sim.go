package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimTicks     int
	flagSimJumpEvery int
	flagSimAutopilot bool
	flagSimSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI and print the outcome.

The run starts on the first tick. After that the body flaps every
--jump-every ticks, or follows the gaps with --autopilot. The run stops at
game over or after --ticks ticks.

Examples:
  flappy sim --seed 7 --jump-every 18
  flappy sim --autopilot --ticks 20000 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum number of ticks")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Flap every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Steer through the gaps automatically")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the database")
}

func runSim(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(settings, os.Stderr, "")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := settings.Sim(flagFPS)
	rec, err := replay.NewRecorder(cfg, runSeed())
	if err != nil {
		return err
	}
	logger.Debug("simulation started", "id", rec.Journal().ID, "seed", rec.Journal().Seed)

	rec.Submit(sim.InputPrimary)
	snap := rec.Tick()
	for i := 1; i < flagSimTicks && !snap.GameOver(); i++ {
		switch {
		case flagSimAutopilot:
			if autopilot(snap, cfg) {
				rec.Submit(sim.InputPrimary)
			}
		case flagSimJumpEvery > 0 && i%flagSimJumpEvery == 0:
			rec.Submit(sim.InputPrimary)
		}
		prev := snap.Score
		snap = rec.Tick()
		if snap.Score != prev {
			logger.Debug("scored", "tick", snap.Tick, "score", snap.Score)
		}
	}

	j := rec.Journal()
	logger.Info("simulation finished", "id", j.ID, "score", j.Score, "ticks", j.Ticks, "phase", j.Phase)
	fmt.Printf("run %s\n", j.ID)
	fmt.Printf("  seed   %d\n", j.Seed)
	fmt.Printf("  score  %d\n", j.Score)
	fmt.Printf("  ticks  %d\n", j.Ticks)
	fmt.Printf("  phase  %s\n", j.Phase)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveRun(j); err != nil {
		return err
	}
	fmt.Printf("saved to %s\n", flagDBPath)
	return nil
}

// autopilot decides whether to flap: when falling with the body's bottom
// near the lower edge of the next gap, or of the playfield middle when no
// obstacle is ahead.
func autopilot(snap sim.Snapshot, cfg sim.Config) bool {
	b := snap.Body
	if b.Velocity > 0 {
		return false
	}

	target := cfg.PlayableHeight()/2 + cfg.HoleHeight/2
	for _, o := range snap.Obstacles {
		if o.Right(cfg.ObstacleWidth) >= cfg.BodyX {
			target = o.HoleY + cfg.HoleHeight
			break
		}
	}
	margin := cfg.HoleHeight / 6
	return b.Bottom(cfg.BodyHeight) >= target-margin
}
