package sim

// Angle limits in degrees. Easing keeps a live body within ±45; only a dead
// body reaches MaxAngle.
const (
	MinAngle  = -45
	MaxAngle  = 90
	tiltLimit = 45

	climbRate = 5 // degrees per tick while moving up
	diveRate  = 8 // degrees per tick while moving down
)

// Physics holds the constants that drive a Body.
type Physics struct {
	Gravity   int // Velocity floor, negative
	JumpForce int // Velocity after a jump, positive
}

// Body is the controlled entity. Velocity is positive upward while the
// coordinate system grows downward.
type Body struct {
	Y        int
	Velocity int
	Angle    int
	Alive    bool

	physics Physics
}

// NewBody creates a living body at rest at the given height.
func NewBody(y int, p Physics) *Body {
	return &Body{
		Y:       y,
		Alive:   true,
		physics: p,
	}
}

// Update applies one tick of motion. A dead body keeps moving at its
// current velocity without any further physics.
func (b *Body) Update() {
	b.Y -= b.Velocity
	if !b.Alive {
		return
	}

	if b.Velocity > b.physics.Gravity {
		b.Velocity--
	}

	if b.Velocity > 0 && b.Angle < tiltLimit {
		b.Angle = min(b.Angle+climbRate, tiltLimit)
	}
	if b.Velocity < 0 && b.Angle > -tiltLimit {
		b.Angle = max(b.Angle-diveRate, -tiltLimit)
	}
}

// Jump sets the upward velocity and immediately applies one update, so the
// jump takes effect within the tick it was issued. No-op once dead.
func (b *Body) Jump() {
	if !b.Alive {
		return
	}
	b.Velocity = b.physics.JumpForce
	b.Update()
}

// Die is a one-way transition: nose down and a hard downward snap.
// Calling it again only reasserts the same state.
func (b *Body) Die() {
	b.Alive = false
	b.Angle = MaxAngle
	b.Velocity = 2 * b.physics.Gravity
}

// Bottom returns the y coordinate of the body's lower edge.
func (b *Body) Bottom(height int) int {
	return b.Y + height
}
