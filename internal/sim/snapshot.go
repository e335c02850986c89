package sim

// Snapshot is a read-only view of one tick's state for rendering.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Body          Body
	Obstacles     []Obstacle
	Score         int
	LastScored    ObstacleID
	HasLastScored bool

	// Cosmetic state, not gameplay-relevant.
	GroundOffset int
	Frame        int
	Gliding      bool

	ScreenWidth int
	Quitting    bool
}

// Visible returns the obstacles that start within the screen width.
func (s Snapshot) Visible() []Obstacle {
	out := make([]Obstacle, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		if o.X > s.ScreenWidth {
			continue
		}
		out = append(out, o)
	}
	return out
}

// GameOver reports whether the run has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}
