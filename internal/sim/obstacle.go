package sim

// ObstacleID identifies an obstacle within one Track. Ids come from a
// per-track counter and are never reused.
type ObstacleID uint64

// Obstacle is one passable gap. Only X changes after creation.
type Obstacle struct {
	ID    ObstacleID
	X     int // Left edge
	HoleY int // Top edge of the gap
}

// Right returns the x coordinate of the obstacle's trailing edge.
func (o Obstacle) Right(width int) int {
	return o.X + width
}

// Rand is the random source used for gap placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// TrackConfig describes the geometry a Track spawns obstacles with.
type TrackConfig struct {
	Spacing       int // Distance between consecutive obstacles
	Width         int // Obstacle width
	HoleHeight    int
	Padding       int
	MaxObstacles  int
	InitialOffset int // Spawn position when the track is empty
}

// Track is the ordered, scrolling collection of obstacles. Index 0 is always
// the frontmost (leftmost) obstacle.
type Track struct {
	cfg       TrackConfig
	rng       Rand
	obstacles []Obstacle
	nextID    ObstacleID

	lastScored    ObstacleID
	hasLastScored bool
}

// NewTrack creates an empty track that draws gap positions from rng.
func NewTrack(cfg TrackConfig, rng Rand) *Track {
	return &Track{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, cfg.MaxObstacles),
	}
}

// Push appends an obstacle with a caller-chosen gap at the given offset.
func (t *Track) Push(x, holeY int) Obstacle {
	o := Obstacle{ID: t.nextID, X: x, HoleY: holeY}
	t.nextID++
	t.obstacles = append(t.obstacles, o)
	return o
}

// SpawnIfNeeded tops the track up to its cap. Each new obstacle is placed
// Spacing to the right of the last one, or at InitialOffset on an empty
// track, with hole_y drawn uniformly from the gap range. It returns the number
// spawned. An empty gap range is reported before anything is sampled.
func (t *Track) SpawnIfNeeded(screenHeight, groundHeight int) (int, error) {
	if len(t.obstacles) >= t.cfg.MaxObstacles {
		return 0, nil
	}
	lo, hi, err := GapRange(screenHeight, groundHeight, t.cfg.HoleHeight, t.cfg.Padding)
	if err != nil {
		return 0, err
	}

	spawned := 0
	for len(t.obstacles) < t.cfg.MaxObstacles {
		x := t.cfg.InitialOffset
		if n := len(t.obstacles); n > 0 {
			x = t.obstacles[n-1].X + t.cfg.Spacing
		}
		t.Push(x, lo+t.rng.Intn(hi-lo+1))
		spawned++
	}
	return spawned, nil
}

// RetireOffscreen removes the frontmost obstacle once its trailing edge has
// reached the left boundary. At most one obstacle retires per call.
func (t *Track) RetireOffscreen() bool {
	if len(t.obstacles) == 0 {
		return false
	}
	if t.obstacles[0].Right(t.cfg.Width) > 0 {
		return false
	}
	t.obstacles = append(t.obstacles[:0], t.obstacles[1:]...)
	return true
}

// Advance moves every obstacle left by speed.
func (t *Track) Advance(speed int) {
	for i := range t.obstacles {
		t.obstacles[i].X -= speed
	}
}

// Obstacles returns a copy of the live obstacles in screen order.
func (t *Track) Obstacles() []Obstacle {
	out := make([]Obstacle, len(t.obstacles))
	copy(out, t.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (t *Track) Len() int {
	return len(t.obstacles)
}

// LastScored returns the id of the most recently scored obstacle.
func (t *Track) LastScored() (ObstacleID, bool) {
	return t.lastScored, t.hasLastScored
}

func (t *Track) setLastScored(id ObstacleID) {
	t.lastScored = id
	t.hasLastScored = true
}
