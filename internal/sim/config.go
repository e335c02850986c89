// Package sim implements the simulation and rules engine of the side-scrolling
// avoidance game: body physics, obstacle generation and lifecycle, collision
// detection, scoring and the phase state machine.
//
// The package is pure: it performs no I/O and owns no global state. A shell
// feeds inputs and ticks into a Simulation and reads back Snapshots to draw.
package sim

import (
	"errors"
	"fmt"
)

// Configuration errors. They are returned wrapped by Config.Validate.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrEmptyGapRange    = errors.New("gap placement range is empty")
	ErrInvalidPhysics   = errors.New("invalid physics constant")
)

// MaxLiveObstacles is the upper bound on Config.MaxObstacles.
const MaxLiveObstacles = 3

// Config holds every gameplay constant the simulation needs.
// All units are integer screen units; velocities are units per tick.
type Config struct {
	ScreenWidth  int // Visible playfield width
	ScreenHeight int // Full screen height including the ground band
	GroundHeight int // Height of the ground band at the bottom

	HoleHeight        int // Height of the passable gap in every obstacle
	SpaceBetweenPipes int // Horizontal distance between consecutive obstacles
	SpawnPadding      int // Minimum distance between a gap and the top/ground
	ObstacleWidth     int // Obstacle width
	MaxObstacles      int // Live obstacle cap
	InitialObstacleX  int // x_offset of the first obstacle

	Gravity     int // Terminal velocity floor (negative)
	JumpForce   int // Velocity set by a jump (positive)
	ScrollSpeed int // Units obstacles move left per tick

	BodyX      int // Fixed left edge of the body
	BodyWidth  int
	BodyHeight int

	TickRate int // Ticks per second, used for the cosmetic animation frame only
}

// DefaultConfig returns the classic 432x768 layout.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       432,
		ScreenHeight:      768,
		GroundHeight:      168,
		HoleHeight:        150,
		SpaceBetweenPipes: 300,
		SpawnPadding:      50,
		ObstacleWidth:     78,
		MaxObstacles:      MaxLiveObstacles,
		InitialObstacleX:  432 * 2,
		Gravity:           -6,
		JumpForce:         12,
		ScrollSpeed:       2,
		BodyX:             80,
		BodyWidth:         51,
		BodyHeight:        36,
		TickRate:          60,
	}
}

// PlayableHeight is the height between the top of the screen and the ground.
func (c Config) PlayableHeight() int {
	return c.ScreenHeight - c.GroundHeight
}

// GroundTop is the y coordinate of the top of the ground band.
func (c Config) GroundTop() int {
	return c.PlayableHeight()
}

// BodyRight is the x coordinate of the right edge of the body.
func (c Config) BodyRight() int {
	return c.BodyX + c.BodyWidth
}

// Physics extracts the body physics constants.
func (c Config) Physics() Physics {
	return Physics{Gravity: c.Gravity, JumpForce: c.JumpForce}
}

// Validate reports the first configuration precondition that does not hold.
// A configuration that passes can never produce an empty gap sample range.
func (c Config) Validate() error {
	dims := []struct {
		name string
		v    int
	}{
		{"screen width", c.ScreenWidth},
		{"screen height", c.ScreenHeight},
		{"hole height", c.HoleHeight},
		{"space between pipes", c.SpaceBetweenPipes},
		{"obstacle width", c.ObstacleWidth},
		{"body width", c.BodyWidth},
		{"body height", c.BodyHeight},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return fmt.Errorf("sim: %s must be positive, got %d: %w", d.name, d.v, ErrInvalidDimension)
		}
	}
	if c.GroundHeight < 0 || c.GroundHeight >= c.ScreenHeight {
		return fmt.Errorf("sim: ground height %d outside [0, %d): %w", c.GroundHeight, c.ScreenHeight, ErrInvalidDimension)
	}
	if c.SpawnPadding < 0 {
		return fmt.Errorf("sim: spawn padding must not be negative, got %d: %w", c.SpawnPadding, ErrInvalidDimension)
	}
	if c.MaxObstacles < 1 || c.MaxObstacles > MaxLiveObstacles {
		return fmt.Errorf("sim: max obstacles must be in [1, %d], got %d: %w", MaxLiveObstacles, c.MaxObstacles, ErrInvalidDimension)
	}
	if c.SpaceBetweenPipes < c.ObstacleWidth {
		return fmt.Errorf("sim: obstacles %d apart overlap at width %d: %w", c.SpaceBetweenPipes, c.ObstacleWidth, ErrInvalidDimension)
	}
	if c.BodyHeight >= c.HoleHeight {
		return fmt.Errorf("sim: body height %d does not fit hole height %d: %w", c.BodyHeight, c.HoleHeight, ErrInvalidDimension)
	}
	if _, _, err := GapRange(c.ScreenHeight, c.GroundHeight, c.HoleHeight, c.SpawnPadding); err != nil {
		return err
	}
	if c.Gravity >= 0 {
		return fmt.Errorf("sim: gravity must be negative, got %d: %w", c.Gravity, ErrInvalidPhysics)
	}
	if c.JumpForce <= 0 {
		return fmt.Errorf("sim: jump force must be positive, got %d: %w", c.JumpForce, ErrInvalidPhysics)
	}
	if c.ScrollSpeed <= 0 {
		return fmt.Errorf("sim: scroll speed must be positive, got %d: %w", c.ScrollSpeed, ErrInvalidPhysics)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("sim: tick rate must be positive, got %d: %w", c.TickRate, ErrInvalidPhysics)
	}
	return nil
}

// GapRange returns the inclusive range [lo, hi] hole_y is sampled from.
// It fails with ErrEmptyGapRange when the gap plus padding cannot fit.
func GapRange(screenHeight, groundHeight, holeHeight, padding int) (lo, hi int, err error) {
	playable := screenHeight - groundHeight
	if playable-holeHeight-2*padding < 0 {
		return 0, 0, fmt.Errorf("sim: hole %d with padding %d does not fit playable height %d: %w",
			holeHeight, padding, playable, ErrEmptyGapRange)
	}
	return padding, playable - holeHeight - padding, nil
}
