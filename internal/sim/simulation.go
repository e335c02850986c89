package sim

import "fmt"

// glideVelocity is the velocity below which the body is drawn gliding.
const glideVelocity = -5

// Simulation is the fixed-tick clock. It exclusively owns the body, the
// obstacle track, the score and the phase; nothing is shared or locked.
type Simulation struct {
	cfg   Config
	body  *Body
	track *Track
	judge Judge

	phase Phase
	score int
	tick  uint64

	queue    []Input
	quitting bool

	groundOffset int
	frame        int
}

// New validates cfg and creates a simulation in the BeforeStart phase. The
// body is centered in the playable area and the track starts with one
// obstacle whose gap is centered too.
func New(cfg Config, rng Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: nil random source: %w", ErrInvalidPhysics)
	}

	s := &Simulation{
		cfg:   cfg,
		body:  NewBody(cfg.PlayableHeight()/2-cfg.BodyHeight/2, cfg.Physics()),
		judge: NewJudge(cfg),
		phase: PhaseBeforeStart,
		frame: 1,
	}
	s.track = NewTrack(TrackConfig{
		Spacing:       cfg.SpaceBetweenPipes,
		Width:         cfg.ObstacleWidth,
		HoleHeight:    cfg.HoleHeight,
		Padding:       cfg.SpawnPadding,
		MaxObstacles:  cfg.MaxObstacles,
		InitialOffset: cfg.InitialObstacleX,
	}, rng)
	s.track.Push(cfg.InitialObstacleX, (cfg.PlayableHeight()-cfg.HoleHeight)/2)

	return s, nil
}

// Submit queues an input for the next tick.
func (s *Simulation) Submit(in Input) {
	s.queue = append(s.queue, in)
}

// Tick advances the simulation by exactly one frame and returns the
// resulting snapshot. Ticks after a quit input leave the state untouched.
func (s *Simulation) Tick() Snapshot {
	if s.quitting {
		s.queue = s.queue[:0]
		return s.Snapshot()
	}

	s.tick++
	s.applyInputs()

	switch s.phase {
	case PhaseRunning:
		s.body.Update()
		s.track.Advance(s.cfg.ScrollSpeed)
		// Validate guarantees a non-empty gap range.
		_, _ = s.track.SpawnIfNeeded(s.cfg.ScreenHeight, s.cfg.GroundHeight)
		s.track.RetireOffscreen()
		s.judgeRunning()
	case PhaseGameOver:
		s.body.Update()
		if hit, clamped := s.judge.GroundCheck(s.body.Y); hit {
			s.body.Y = clamped
			s.body.Die()
		}
	}

	s.advanceCosmetics()
	return s.Snapshot()
}

// applyInputs drains the queue in submission order. In BeforeStart the first
// primary input starts the run with a downward nudge; later primary inputs
// in the same tick are jumps.
func (s *Simulation) applyInputs() {
	for _, in := range s.queue {
		switch in {
		case InputQuit:
			s.quitting = true
		case InputPrimary:
			switch s.phase {
			case PhaseBeforeStart:
				s.phase = PhaseRunning
				s.body.Velocity = s.cfg.Gravity
			case PhaseRunning:
				s.body.Jump()
			}
		}
		if s.quitting {
			break
		}
	}
	s.queue = s.queue[:0]
}

func (s *Simulation) judgeRunning() {
	last, ok := s.track.LastScored()
	v := s.judge.Evaluate(s.body.Y, s.track.obstacles, last, ok)

	s.score += v.Points
	if v.Scored {
		s.track.setLastScored(v.ScoreID)
	}

	if v.Ground {
		s.body.Y = v.ClampY
	}
	if v.Terminal() {
		s.phase = PhaseGameOver
		s.body.Die()
	}
}

func (s *Simulation) advanceCosmetics() {
	if s.phase == PhaseGameOver {
		return
	}
	if s.groundOffset >= s.cfg.ScreenWidth {
		s.groundOffset = 0
	} else {
		s.groundOffset += s.cfg.ScrollSpeed
	}
	if s.frame >= s.cfg.TickRate {
		s.frame = 1
	} else {
		s.frame++
	}
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Body returns a copy of the body state.
func (s *Simulation) Body() Body {
	return *s.body
}

// Obstacles returns the live obstacles in screen order.
func (s *Simulation) Obstacles() []Obstacle {
	return s.track.Obstacles()
}

// Score returns the number of obstacles passed.
func (s *Simulation) Score() int {
	return s.score
}

// ScoreDigits returns the decimal digits of the score, most significant first.
func (s *Simulation) ScoreDigits() []int {
	return Digits(s.score)
}

// Ticks returns the number of ticks processed.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Quitting reports whether a quit input was received.
func (s *Simulation) Quitting() bool {
	return s.quitting
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Snapshot captures the state a renderer needs.
func (s *Simulation) Snapshot() Snapshot {
	last, ok := s.track.LastScored()
	return Snapshot{
		Tick:          s.tick,
		Phase:         s.phase,
		Body:          *s.body,
		Obstacles:     s.track.Obstacles(),
		Score:         s.score,
		LastScored:    last,
		HasLastScored: ok,
		GroundOffset:  s.groundOffset,
		Frame:         s.frame,
		Gliding:       s.body.Velocity < glideVelocity,
		ScreenWidth:   s.cfg.ScreenWidth,
		Quitting:      s.quitting,
	}
}

// Digits splits a non-negative number into its decimal digits.
func Digits(n int) []int {
	if n <= 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append([]int{n % 10}, out...)
		n /= 10
	}
	return out
}
