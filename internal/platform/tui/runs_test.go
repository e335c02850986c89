package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func seedRuns(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i, seed := range []int64{3, 4} {
		rec, err := replay.NewRecorder(sim.DefaultConfig(), seed)
		if err != nil {
			t.Fatalf("NewRecorder() failed: %v", err)
		}
		rec.Submit(sim.InputPrimary)
		for n := 0; n < 100; n++ {
			rec.Tick()
		}
		j := rec.Journal()
		j.CreatedAt = time.Date(2026, 5, 1, i, 0, 0, 0, time.UTC)
		if err := store.SaveRun(j); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func updateRuns(t *testing.T, m RunsModel, msg tea.Msg) RunsModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(RunsModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm
}

func TestRunsModelLists(t *testing.T) {
	m := NewRunsModel(seedRuns(t), 100, 30, false)

	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, expected 2", len(m.runs))
	}
	view := m.View()
	if !strings.Contains(view, "RECENT RUNS") {
		t.Error("title missing")
	}

	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.top || !strings.Contains(m.View(), "TOP RUNS") {
		t.Error("tab should switch to top runs")
	}
}

func TestRunsModelVerify(t *testing.T) {
	m := NewRunsModel(seedRuns(t), 100, 30, false)

	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.Status(), "matches") {
		t.Errorf("status = %q, expected a matching replay", m.Status())
	}
}

func TestRunsModelDelete(t *testing.T) {
	store := seedRuns(t)
	m := NewRunsModel(store, 100, 30, false)

	m = updateRuns(t, m, runeKey('d'))
	if len(m.runs) != 1 {
		t.Errorf("%d runs after delete, expected 1", len(m.runs))
	}
	if best, _ := store.RecentRuns(10); len(best) != 1 {
		t.Errorf("store holds %d runs, expected 1", len(best))
	}
}

func TestRunsModelEmpty(t *testing.T) {
	m := NewRunsModel(nil, 80, 24, true)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty message missing")
	}
	m = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Status() != "" {
		t.Errorf("verify with no runs set status %q", m.Status())
	}
}
