package sim

// Judge evaluates a body against the ground and the obstacle track.
// It is pure: Evaluate reads state and returns a Verdict for the clock to apply.
type Judge struct {
	BodyLeft      int
	BodyRight     int
	BodyHeight    int
	GroundTop     int
	HoleHeight    int
	ObstacleWidth int
}

// NewJudge derives the judge bounds from a configuration.
func NewJudge(cfg Config) Judge {
	return Judge{
		BodyLeft:      cfg.BodyX,
		BodyRight:     cfg.BodyRight(),
		BodyHeight:    cfg.BodyHeight,
		GroundTop:     cfg.GroundTop(),
		HoleHeight:    cfg.HoleHeight,
		ObstacleWidth: cfg.ObstacleWidth,
	}
}

// Verdict is the outcome of one evaluation.
type Verdict struct {
	Ground  bool // Body reached the ground; ClampY holds its resting y
	ClampY  int
	Hit     bool // Body struck an obstacle
	HitID   ObstacleID
	Points  int // Obstacles newly passed this tick
	Scored  bool
	ScoreID ObstacleID // Last obstacle scored, valid when Scored
}

// Terminal reports whether the verdict ends the run.
func (v Verdict) Terminal() bool {
	return v.Ground || v.Hit
}

// GroundCheck reports whether a body at y touches the ground and the y it is
// clamped to when it does.
func (j Judge) GroundCheck(y int) (bool, int) {
	if y+j.BodyHeight >= j.GroundTop {
		return true, j.GroundTop - j.BodyHeight
	}
	return false, y
}

// Overlaps reports whether the body's horizontal span touches the obstacle.
func (j Judge) Overlaps(o Obstacle) bool {
	return j.BodyRight >= o.X && j.BodyLeft <= o.Right(j.ObstacleWidth)
}

// InsideGap reports whether a body at y lies strictly within the obstacle's gap.
func (j Judge) InsideGap(y int, o Obstacle) bool {
	return y > o.HoleY && y+j.BodyHeight < o.HoleY+j.HoleHeight
}

// Evaluate checks the ground first; a ground contact is terminal and skips the
// obstacles. Obstacles are then walked front to back: the first colliding one
// stops the walk, while every safely overlapping one whose id differs from the
// last scored id adds a point.
func (j Judge) Evaluate(y int, obstacles []Obstacle, lastScored ObstacleID, hasLastScored bool) Verdict {
	var v Verdict

	if hit, clamped := j.GroundCheck(y); hit {
		v.Ground = true
		v.ClampY = clamped
		return v
	}

	for _, o := range obstacles {
		if !j.Overlaps(o) {
			continue
		}
		if !j.InsideGap(y, o) {
			v.Hit = true
			v.HitID = o.ID
			break
		}
		if !hasLastScored || lastScored != o.ID {
			v.Points++
			v.Scored = true
			v.ScoreID = o.ID
			lastScored = o.ID
			hasLastScored = true
		}
	}
	return v
}
