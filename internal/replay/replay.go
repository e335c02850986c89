// Package replay records the inputs of a run so it can be re-simulated.
//
// A run is fully determined by its configuration, its random seed and the
// tick at which each input arrived. Play feeds those back into a fresh
// simulation; Verify checks the outcome against what was recorded.
package replay

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// ErrReplayMismatch is returned by Verify when a replay diverges.
var ErrReplayMismatch = errors.New("replay: outcome mismatch")

// Entry is one input and the tick it was applied on.
type Entry struct {
	Tick  uint64
	Input sim.Input
}

// Journal is everything needed to reproduce a run.
type Journal struct {
	ID        string
	Seed      int64
	Config    sim.Config
	Entries   []Entry
	Score     int
	Ticks     uint64
	Phase     sim.Phase
	CreatedAt time.Time
}

// Recorder drives a simulation and keeps its journal.
type Recorder struct {
	sim     *sim.Simulation
	journal Journal
}

// NewRecorder creates a simulation seeded with seed and starts a new journal.
func NewRecorder(cfg sim.Config, seed int64) (*Recorder, error) {
	s, err := sim.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		sim: s,
		journal: Journal{
			ID:        uuid.NewString(),
			Seed:      seed,
			Config:    cfg,
			CreatedAt: time.Now(),
		},
	}, nil
}

// Submit records in against the upcoming tick and queues it.
// Inputs after a quit are dropped.
func (r *Recorder) Submit(in sim.Input) {
	if r.sim.Quitting() {
		return
	}
	r.journal.Entries = append(r.journal.Entries, Entry{Tick: r.sim.Ticks() + 1, Input: in})
	r.sim.Submit(in)
}

// Tick advances the simulation one frame.
func (r *Recorder) Tick() sim.Snapshot {
	return r.sim.Tick()
}

// Snapshot returns the current state without ticking.
func (r *Recorder) Snapshot() sim.Snapshot {
	return r.sim.Snapshot()
}

// Journal returns a copy of the journal with the current outcome filled in.
func (r *Recorder) Journal() Journal {
	j := r.journal
	j.Entries = append([]Entry(nil), r.journal.Entries...)
	j.Score = r.sim.Score()
	j.Ticks = r.sim.Ticks()
	j.Phase = r.sim.Phase()
	return j
}

// Play re-simulates j and returns the final snapshot. logger may be nil.
func Play(j Journal, logger *log.Logger) (sim.Snapshot, error) {
	s, err := sim.New(j.Config, rand.New(rand.NewSource(j.Seed)))
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	snap := s.Snapshot()
	next := 0
	for t := uint64(1); t <= j.Ticks; t++ {
		for next < len(j.Entries) && j.Entries[next].Tick == t {
			s.Submit(j.Entries[next].Input)
			next++
		}
		prev := snap.Phase
		snap = s.Tick()
		if logger != nil && snap.Phase != prev {
			logger.Debug("phase change", "tick", snap.Tick, "from", prev, "to", snap.Phase, "score", snap.Score)
		}
	}

	if next < len(j.Entries) {
		return snap, fmt.Errorf("replay: %d inputs recorded after tick %d", len(j.Entries)-next, j.Ticks)
	}
	return snap, nil
}

// Verify replays j and checks the result with Check.
func Verify(j Journal, logger *log.Logger) error {
	snap, err := Play(j, logger)
	if err != nil {
		return err
	}
	return Check(j, snap)
}

// Check compares a replayed snapshot with the outcome recorded in j.
func Check(j Journal, snap sim.Snapshot) error {
	if snap.Score != j.Score || snap.Phase != j.Phase || snap.Tick != j.Ticks {
		return fmt.Errorf("%w: recorded score %d phase %s ticks %d, replayed score %d phase %s ticks %d",
			ErrReplayMismatch, j.Score, j.Phase, j.Ticks, snap.Score, snap.Phase, snap.Tick)
	}
	return nil
}
