// Package config loads the gameplay constants from YAML or TOML files,
// falling back to an embedded default.
package config

import (
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen    ScreenConfig    `yaml:"screen" toml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles" toml:"obstacles"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// ScreenConfig defines the world the simulation runs in. The terminal view
// is scaled from these units.
type ScreenConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	GroundHeight int `yaml:"ground_height" toml:"ground_height"`
}

// PhysicsConfig defines body and scroll physics.
type PhysicsConfig struct {
	Gravity     int `yaml:"gravity" toml:"gravity"`           // terminal velocity floor, negative
	JumpForce   int `yaml:"jump_force" toml:"jump_force"`     // positive
	ScrollSpeed int `yaml:"scroll_speed" toml:"scroll_speed"` // units per tick
}

// ObstaclesConfig defines obstacle geometry and spawning.
type ObstaclesConfig struct {
	Width       int `yaml:"width" toml:"width"`
	HoleHeight  int `yaml:"hole_height" toml:"hole_height"`
	Spacing     int `yaml:"spacing" toml:"spacing"`
	Padding     int `yaml:"padding" toml:"padding"`
	MaxLive     int `yaml:"max_live" toml:"max_live"`
	FirstOffset int `yaml:"first_offset" toml:"first_offset"`
}

// PlayerConfig defines the body's fixed column and hitbox.
type PlayerConfig struct {
	X      int `yaml:"x" toml:"x"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Sim converts the file representation to simulation constants.
// The result is validated by sim.New.
func (c FlappyConfig) Sim(tickRate int) sim.Config {
	return sim.Config{
		ScreenWidth:       c.Screen.Width,
		ScreenHeight:      c.Screen.Height,
		GroundHeight:      c.Screen.GroundHeight,
		HoleHeight:        c.Obstacles.HoleHeight,
		SpaceBetweenPipes: c.Obstacles.Spacing,
		SpawnPadding:      c.Obstacles.Padding,
		ObstacleWidth:     c.Obstacles.Width,
		MaxObstacles:      c.Obstacles.MaxLive,
		InitialObstacleX:  c.Obstacles.FirstOffset,
		Gravity:           c.Physics.Gravity,
		JumpForce:         c.Physics.JumpForce,
		ScrollSpeed:       c.Physics.ScrollSpeed,
		BodyX:             c.Player.X,
		BodyWidth:         c.Player.Width,
		BodyHeight:        c.Player.Height,
		TickRate:          tickRate,
	}
}
