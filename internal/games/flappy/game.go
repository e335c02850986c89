// Package flappy adapts the simulation to the arcade game interface.
// The player keeps a body airborne through gaps in scrolling obstacles.
package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	DeadChar      = '✕'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▓'
	GroundAltChar = '▒'
)

// Game drives one simulation run and records its inputs.
type Game struct {
	rec  *replay.Recorder
	cfg  sim.Config
	snap sim.Snapshot
	best int
}

// New creates a game that loads its constants on Reset.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset loads the constants from cfg.ConfigPath (or the search path) and
// starts a fresh run with the runtime seed.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	settings, err := config.LoadFlappy(cfg.ConfigPath)
	if err != nil {
		return err
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	simCfg := settings.Sim(tickRate)
	rec, err := replay.NewRecorder(simCfg, cfg.Seed)
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}

	g.cfg = simCfg
	g.rec = rec
	g.snap = rec.Snapshot()
	return nil
}

// Step feeds this frame's actions to the simulation and ticks it once.
// Restart is left to the platform.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		switch a {
		case core.ActionJump:
			g.rec.Submit(sim.InputPrimary)
		case core.ActionQuit:
			g.rec.Submit(sim.InputQuit)
		}
	}
	g.snap = g.rec.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Started:  g.snap.Phase != sim.PhaseBeforeStart,
		GameOver: g.snap.GameOver(),
		Quit:     g.snap.Quitting,
	}
}

// Snapshot returns the state after the last tick.
func (g *Game) Snapshot() sim.Snapshot {
	return g.snap
}

// Journal returns the inputs and outcome of the current run.
func (g *Game) Journal() replay.Journal {
	return g.rec.Journal()
}

// SetBest sets the best score shown on the game over box.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Render draws the current snapshot scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.cfg
	sc := core.Scaler{
		WorldW: cfg.ScreenWidth,
		WorldH: cfg.ScreenHeight,
		CellsW: dst.Width(),
		CellsH: dst.Height(),
	}

	view := core.NewRect(0, 0, dst.Width(), dst.Height())
	for _, o := range g.snap.Visible() {
		if !sc.Rect(o.X, 0, cfg.ObstacleWidth, cfg.GroundTop()).Intersects(view) {
			continue
		}
		g.drawObstacle(dst, sc, cfg, o)
	}
	g.drawGround(dst, sc, cfg)
	g.drawBody(dst, sc, cfg)

	dst.DrawTextCentered(1, strconv.Itoa(g.snap.Score), core.ColorText)

	switch g.snap.Phase {
	case sim.PhaseBeforeStart:
		g.drawCenteredMessage(dst, "GET READY", "Space to flap  |  Q to quit")
	case sim.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  R restart  Q quit", g.snap.Score, max(g.best, g.snap.Score)))
	}
}

// drawObstacle renders the two columns around an obstacle's gap.
func (g *Game) drawObstacle(dst *core.Screen, sc core.Scaler, cfg sim.Config, o sim.Obstacle) {
	top := sc.Rect(o.X, 0, cfg.ObstacleWidth, o.HoleY)
	dst.FillRect(top, PipeChar, core.ColorPipe)
	if !top.Empty() {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorPipeCap)
	}

	gapBottom := o.HoleY + cfg.HoleHeight
	bottom := sc.Rect(o.X, gapBottom, cfg.ObstacleWidth, cfg.GroundTop()-gapBottom)
	dst.FillRect(bottom, PipeChar, core.ColorPipe)
	if !bottom.Empty() {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorPipeCap)
	}
}

// drawGround fills the ground band with a pattern scrolled by the ground offset.
func (g *Game) drawGround(dst *core.Screen, sc core.Scaler, cfg sim.Config) {
	top := core.Clamp(sc.Y(cfg.GroundTop()), 0, dst.Height())
	shift := sc.X(g.snap.GroundOffset)
	for y := top; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			r := GroundChar
			if (x+shift)%4 == 0 {
				r = GroundAltChar
			}
			dst.SetColored(x, y, r, core.ColorGround)
		}
	}
}

// drawBody renders the body hitbox with a heading glyph on its leading edge.
func (g *Game) drawBody(dst *core.Screen, sc core.Scaler, cfg sim.Config) {
	b := g.snap.Body
	r := sc.Rect(cfg.BodyX, b.Y, cfg.BodyWidth, cfg.BodyHeight)

	if !b.Alive {
		dst.FillRect(r, DeadChar, core.ColorDead)
		return
	}
	dst.FillRect(r, BodyChar, core.ColorBody)
	dst.SetColored(r.Right()-1, r.Y, headingGlyph(b.Angle), core.ColorBody)
	if r.W > 1 {
		dst.SetColored(r.X, r.Y, wingGlyph(g.snap.Frame, cfg.TickRate, g.snap.Gliding), core.ColorBody)
	}
}

// headingGlyph picks the beak character from the tilt angle.
func headingGlyph(angle int) rune {
	switch {
	case angle >= 15:
		return '◥'
	case angle <= -15:
		return '◢'
	default:
		return '▶'
	}
}

// wingGlyph flaps four times per second and holds still while gliding.
func wingGlyph(frame, tickRate int, gliding bool) rune {
	if gliding {
		return '─'
	}
	period := max(tickRate/8, 1)
	if (frame/period)%2 == 0 {
		return '╱'
	}
	return '╲'
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorMuted)
	dst.DrawTextCentered(box.Y+1, title, core.ColorText)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorMuted)
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
