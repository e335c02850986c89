package replay

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// record plays a scripted run: start, then a jump every period ticks.
func record(t *testing.T, seed int64, ticks, period int) *Recorder {
	t.Helper()
	r, err := NewRecorder(sim.DefaultConfig(), seed)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	r.Submit(sim.InputPrimary)
	for i := 1; i <= ticks; i++ {
		if i%period == 0 {
			r.Submit(sim.InputPrimary)
		}
		r.Tick()
	}
	return r
}

func TestRecorderJournal(t *testing.T) {
	r := record(t, 7, 120, 15)
	j := r.Journal()

	if j.ID == "" {
		t.Error("journal has no id")
	}
	if j.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", j.Seed)
	}
	if j.Ticks != 120 {
		t.Errorf("Ticks = %d, expected 120", j.Ticks)
	}
	if len(j.Entries) == 0 || j.Entries[0].Tick != 1 || j.Entries[0].Input != sim.InputPrimary {
		t.Fatalf("first entry = %+v, expected primary on tick 1", j.Entries)
	}
	for i := 1; i < len(j.Entries); i++ {
		if j.Entries[i].Tick < j.Entries[i-1].Tick {
			t.Fatalf("entries out of order at %d", i)
		}
	}

	// The copy is detached from the recorder.
	j.Entries[0].Tick = 99
	if r.Journal().Entries[0].Tick != 1 {
		t.Error("Journal() shares its entries slice")
	}
}

func TestPlayReproducesRun(t *testing.T) {
	for _, seed := range []int64{1, 2, 42} {
		r := record(t, seed, 900, 17)
		j := r.Journal()

		snap, err := Play(j, nil)
		if err != nil {
			t.Fatalf("seed %d: Play() failed: %v", seed, err)
		}
		want := r.Snapshot()
		if snap.Score != want.Score || snap.Phase != want.Phase || snap.Body != want.Body {
			t.Errorf("seed %d: replay %+v diverged from %+v", seed, snap, want)
		}
		if len(snap.Obstacles) != len(want.Obstacles) {
			t.Fatalf("seed %d: %d obstacles, expected %d", seed, len(snap.Obstacles), len(want.Obstacles))
		}
		for i := range want.Obstacles {
			if snap.Obstacles[i] != want.Obstacles[i] {
				t.Errorf("seed %d: obstacle %d = %+v, expected %+v", seed, i, snap.Obstacles[i], want.Obstacles[i])
			}
		}
		if err := Verify(j, nil); err != nil {
			t.Errorf("seed %d: Verify() failed: %v", seed, err)
		}
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	j := record(t, 3, 200, 16).Journal()
	j.Score += 5

	err := Verify(j, nil)
	if !errors.Is(err, ErrReplayMismatch) {
		t.Fatalf("Verify() error = %v, expected ErrReplayMismatch", err)
	}
}

func TestCheckComparesSnapshot(t *testing.T) {
	r := record(t, 5, 150, 14)
	j := r.Journal()
	snap := r.Snapshot()

	if err := Check(j, snap); err != nil {
		t.Fatalf("Check() on the live snapshot failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(s *sim.Snapshot)
	}{
		{"score", func(s *sim.Snapshot) { s.Score++ }},
		{"tick", func(s *sim.Snapshot) { s.Tick-- }},
		{"phase", func(s *sim.Snapshot) { s.Phase = sim.PhaseBeforeStart }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snap
			tt.mutate(&s)
			if err := Check(j, s); !errors.Is(err, ErrReplayMismatch) {
				t.Errorf("Check() error = %v, expected ErrReplayMismatch", err)
			}
		})
	}
}

func TestPlayRejectsEntriesPastEnd(t *testing.T) {
	j := record(t, 4, 50, 10).Journal()
	j.Entries = append(j.Entries, Entry{Tick: 51, Input: sim.InputPrimary})

	if _, err := Play(j, nil); err == nil {
		t.Error("Play() should reject inputs after the last tick")
	}
}

func TestPlayRejectsBadConfig(t *testing.T) {
	j := record(t, 5, 10, 5).Journal()
	j.Config.Gravity = 3

	if _, err := Play(j, nil); !errors.Is(err, sim.ErrInvalidPhysics) {
		t.Errorf("Play() error = %v, expected ErrInvalidPhysics", err)
	}
}

func TestRecorderDropsInputAfterQuit(t *testing.T) {
	r, err := NewRecorder(sim.DefaultConfig(), 9)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	r.Submit(sim.InputPrimary)
	r.Tick()
	r.Submit(sim.InputQuit)
	r.Tick()
	r.Submit(sim.InputPrimary)
	r.Tick()

	j := r.Journal()
	if len(j.Entries) != 2 {
		t.Errorf("recorded %d entries, expected 2", len(j.Entries))
	}
	if j.Ticks != 2 {
		t.Errorf("Ticks = %d, expected 2", j.Ticks)
	}
	if err := Verify(j, nil); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}
