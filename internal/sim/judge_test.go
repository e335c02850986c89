package sim

import "testing"

func testJudge() Judge {
	return Judge{
		BodyLeft:      80,
		BodyRight:     131,
		BodyHeight:    24,
		GroundTop:     618,
		HoleHeight:    150,
		ObstacleWidth: 78,
	}
}

func TestJudgeGround(t *testing.T) {
	j := testJudge()

	tests := []struct {
		name    string
		y       int
		hit     bool
		clamped int
	}{
		{"well above", 300, false, 300},
		{"one unit above", 593, false, 593},
		{"touching", 594, true, 594},
		{"below", 640, true, 594},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, clamped := j.GroundCheck(tt.y)
			if hit != tt.hit || clamped != tt.clamped {
				t.Errorf("GroundCheck(%d) = (%v, %d), expected (%v, %d)", tt.y, hit, clamped, tt.hit, tt.clamped)
			}
		})
	}
}

func TestJudgeGroundSkipsObstacles(t *testing.T) {
	j := testJudge()
	obs := []Obstacle{{ID: 1, X: 80, HoleY: 100}}

	v := j.Evaluate(600, obs, 0, false)

	if !v.Ground || v.ClampY != 594 {
		t.Errorf("verdict = %+v, expected ground contact clamped to 594", v)
	}
	if v.Hit || v.Points != 0 {
		t.Errorf("obstacles evaluated after ground contact: %+v", v)
	}
}

func TestJudgeOverlap(t *testing.T) {
	j := testJudge()

	tests := []struct {
		name string
		x    int
		want bool
	}{
		{"far right", 200, false},
		{"leading edge touches body right", 131, true},
		{"trailing edge touches body left", 2, true},
		{"passed", 1, false},
		{"centered", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.Overlaps(Obstacle{X: tt.x}); got != tt.want {
				t.Errorf("Overlaps(x=%d) = %v, expected %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestJudgeObstacleCollision(t *testing.T) {
	j := testJudge()
	o := Obstacle{ID: 4, X: 50, HoleY: 300}

	tests := []struct {
		name string
		y    int
		hit  bool
	}{
		{"top edge touching", 300, true},
		{"above gap", 250, true},
		{"inside gap", 310, false},
		{"lowest safe", 425, false},
		{"bottom edge touching", 426, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := j.Evaluate(tt.y, []Obstacle{o}, 0, false)
			if v.Hit != tt.hit {
				t.Errorf("Evaluate(y=%d).Hit = %v, expected %v", tt.y, v.Hit, tt.hit)
			}
			if v.Hit && v.HitID != o.ID {
				t.Errorf("HitID = %d, expected %d", v.HitID, o.ID)
			}
		})
	}
}

func TestJudgeScoresOncePerObstacle(t *testing.T) {
	j := testJudge()
	o := Obstacle{ID: 9, X: 50, HoleY: 300}

	v := j.Evaluate(310, []Obstacle{o}, 0, false)
	if v.Points != 1 || !v.Scored || v.ScoreID != 9 {
		t.Fatalf("first pass verdict = %+v, expected one point for id 9", v)
	}

	v = j.Evaluate(312, []Obstacle{o}, v.ScoreID, true)
	if v.Points != 0 {
		t.Errorf("repeat pass scored %d points, expected 0", v.Points)
	}
}

func TestJudgeStopsAtFirstCollision(t *testing.T) {
	j := Judge{
		BodyLeft:      80,
		BodyRight:     131,
		BodyHeight:    24,
		GroundTop:     618,
		HoleHeight:    150,
		ObstacleWidth: 30,
	}
	// Spacing narrower than the body so two obstacles overlap at once.
	obs := []Obstacle{
		{ID: 1, X: 70, HoleY: 300},
		{ID: 2, X: 110, HoleY: 100},
		{ID: 3, X: 120, HoleY: 300},
	}

	v := j.Evaluate(310, obs, 0, false)

	if v.Points != 1 || v.ScoreID != 1 {
		t.Errorf("expected the obstacle before the collision to score, got %+v", v)
	}
	if !v.Hit || v.HitID != 2 {
		t.Errorf("expected collision with obstacle 2, got %+v", v)
	}
}

func TestJudgeScoresEveryOverlappingObstacle(t *testing.T) {
	j := Judge{
		BodyLeft:      80,
		BodyRight:     131,
		BodyHeight:    24,
		GroundTop:     618,
		HoleHeight:    150,
		ObstacleWidth: 30,
	}
	obs := []Obstacle{
		{ID: 1, X: 70, HoleY: 300},
		{ID: 2, X: 110, HoleY: 300},
	}

	v := j.Evaluate(310, obs, 0, false)

	if v.Points != 2 || v.ScoreID != 2 || v.Hit {
		t.Errorf("verdict = %+v, expected two points ending at id 2", v)
	}
}
