package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration, mirroring
// sim.DefaultConfig.
func DefaultFlappyConfig() FlappyConfig {
	d := sim.DefaultConfig()
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:        d.ScreenWidth,
			Height:       d.ScreenHeight,
			GroundHeight: d.GroundHeight,
		},
		Physics: PhysicsConfig{
			Gravity:     d.Gravity,
			JumpForce:   d.JumpForce,
			ScrollSpeed: d.ScrollSpeed,
		},
		Obstacles: ObstaclesConfig{
			Width:       d.ObstacleWidth,
			HoleHeight:  d.HoleHeight,
			Spacing:     d.SpaceBetweenPipes,
			Padding:     d.SpawnPadding,
			MaxLive:     d.MaxObstacles,
			FirstOffset: d.InitialObstacleX,
		},
		Player: PlayerConfig{
			X:      d.BodyX,
			Width:  d.BodyWidth,
			Height: d.BodyHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
