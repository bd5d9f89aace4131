package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It mirrors defaults/flappy.yaml and is the fallback if the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:  400,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:     0.3,
			JumpImpulse: -5.5,
			ScrollSpeed: 2.0,
		},
		Obstacles: FlappyObstacles{
			Width:         60,
			GapHeight:     160,
			SpawnInterval: 160,
			MinMargin:     50,
			PruneMargin:   100,
		},
		Player: FlappyPlayer{
			X:             50,
			Size:          40,
			HitboxPadding: 5,
		},
		Hover: FlappyHover{
			Amplitude:   5,
			AngularRate: 0.1,
		},
		Rotation: FlappyRotation{
			Factor: 4,
			Min:    -25,
			Max:    90,
		},
		Characters: []Character{
			{ID: "katappa", Name: "KATAPPA"},
			{ID: "guruji", Name: "GURU JI"},
			{ID: "awara", Name: "AWARA"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
