// Package config provides YAML-based game configuration loading and
// environment-driven runtime settings.
package config

// FlappyConfig contains all configuration for a flappy session.
// Every value is constant for the lifetime of a session.
type FlappyConfig struct {
	World      FlappyWorld     `yaml:"world"`
	Physics    FlappyPhysics   `yaml:"physics"`
	Obstacles  FlappyObstacles `yaml:"obstacles"`
	Player     FlappyPlayer    `yaml:"player"`
	Hover      FlappyHover     `yaml:"hover"`
	Rotation   FlappyRotation  `yaml:"rotation"`
	Characters []Character     `yaml:"characters"`
}

// FlappyWorld defines the logical playfield in pixels.
type FlappyWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters, all per tick.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a flap (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward obstacle motion
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	MinMargin     float64 `yaml:"min_margin"`     // Minimum distance from gap to floor and ceiling
	PruneMargin   float64 `yaml:"prune_margin"`   // How far past the left edge an obstacle survives
}

// FlappyPlayer defines the controlled entity.
type FlappyPlayer struct {
	X             float64 `yaml:"x"`
	Size          float64 `yaml:"size"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// FlappyHover defines the pre-game hover animation.
type FlappyHover struct {
	Amplitude   float64 `yaml:"amplitude"`
	AngularRate float64 `yaml:"angular_rate"` // Radians per tick
}

// FlappyRotation defines the cosmetic tilt derived from velocity.
type FlappyRotation struct {
	Factor float64 `yaml:"factor"` // Degrees per unit of velocity
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

// Character is a selectable player avatar.
type Character struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}
