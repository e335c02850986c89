package flappy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// writeConfig stores data as flappy.yaml in a temp dir and returns its path.
func writeConfig(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func testRuntime(t *testing.T, seed int64) core.RuntimeConfig {
	t.Helper()
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       seed,
		ConfigPath: writeConfig(t, config.DefaultYAML()),
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	if err := g.Reset(testRuntime(t, seed)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Add(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Jump every 15 ticks to try to stay airborne
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputSequence[i].Add(core.ActionJump)
		}
	}

	run := func() sim.Snapshot {
		g := newTestGame(t, 12345)
		for _, in := range inputSequence {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score || s1.Tick != s2.Tick || s1.Body != s2.Body {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
}

func TestGameStartTransition(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(core.NewInputFrame())
	if res.State.Started {
		t.Error("game started without input")
	}

	res = g.Step(jumpFrame())
	if !res.State.Started {
		t.Error("jump should start the run")
	}
	if g.Snapshot().Phase != sim.PhaseRunning {
		t.Errorf("Phase = %v, expected Running", g.Snapshot().Phase)
	}
}

func TestGameRunsToGameOver(t *testing.T) {
	g := newTestGame(t, 2)
	g.Step(jumpFrame())

	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.State().GameOver {
		t.Fatal("body without jumps should hit the ground")
	}
	if g.Snapshot().Body.Alive {
		t.Error("body should be dead after game over")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Add(core.ActionJump)
		}
		g.Step(in)
	}

	if err := g.Reset(testRuntime(t, 42)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	s := g.Snapshot()
	if s.Score != 0 || s.Tick != 0 || s.Phase != sim.PhaseBeforeStart {
		t.Errorf("Reset left state behind: %+v", s)
	}
	if len(g.Journal().Entries) != 0 {
		t.Errorf("Reset kept %d journal entries", len(g.Journal().Entries))
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, 3)
	in := core.NewInputFrame()
	in.Add(core.ActionQuit)

	if !g.Step(in).State.Quit {
		t.Error("quit action should set Quit")
	}
}

func TestGameJournalReplays(t *testing.T) {
	g := newTestGame(t, 99)
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%16 == 0 {
			in.Add(core.ActionJump)
		}
		g.Step(in)
	}

	j := g.Journal()
	if j.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", j.Seed)
	}
	if err := replay.Verify(j, nil); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}

func TestGameRejectsBadConfig(t *testing.T) {
	rt := testRuntime(t, 1)
	rt.ConfigPath = writeConfig(t, []byte("physics:\n  jump_force: 0\n"))

	if err := New().Reset(rt); err == nil {
		t.Error("Reset() with zero jump force should fail")
	}
}

func TestGameRejectsMissingConfig(t *testing.T) {
	rt := testRuntime(t, 1)
	rt.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

	if err := New().Reset(rt); err == nil {
		t.Error("Reset() with a missing config file should fail")
	}
}

func TestGameUsesConfigPath(t *testing.T) {
	rt := testRuntime(t, 1)
	rt.ConfigPath = writeConfig(t, []byte("obstacles:\n  max_live: 2\n"))

	g := New()
	if err := g.Reset(rt); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.Journal().Config.MaxObstacles != 2 {
		t.Errorf("MaxObstacles = %d, expected 2 from %s", g.Journal().Config.MaxObstacles, rt.ConfigPath)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GET READY") {
		t.Error("title message missing before start")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Errorf("bottom row should be ground, got %q", screen.Row(23))
	}
	if !strings.ContainsRune(out, BodyChar) {
		t.Error("body not drawn")
	}

	// Start and let obstacles scroll into view.
	g.Step(jumpFrame())
	for i := 0; i < 250; i++ {
		in := core.NewInputFrame()
		if i%14 == 0 {
			in.Add(core.ActionJump)
		}
		g.Step(in)
	}
	g.Render(screen)
	if strings.Contains(screen.String(), "GET READY") {
		t.Error("title message still shown while running")
	}
	if len(g.Snapshot().Visible()) > 0 && !strings.ContainsRune(screen.String(), PipeChar) {
		t.Error("visible obstacle not drawn")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 6)
	g.SetBest(17)
	g.Step(jumpFrame())
	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over message missing")
	}
	if !strings.Contains(out, "Best: 17") {
		t.Error("best score missing")
	}
	if !strings.ContainsRune(out, DeadChar) {
		t.Error("dead body not drawn")
	}
}

func TestHeadingGlyph(t *testing.T) {
	if headingGlyph(sim.MaxAngle) == headingGlyph(sim.MinAngle) {
		t.Error("climbing and diving should look different")
	}
	if headingGlyph(0) != '▶' {
		t.Errorf("level heading = %q", headingGlyph(0))
	}
}
