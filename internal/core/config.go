package core

// RuntimeConfig contains settings the platform passes to a session.
// The terminal size only affects rendering; the simulation runs in world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display refreshes (and simulation ticks) per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// WithDefaults fills unset (non-positive) screen and rate fields from
// DefaultConfig. The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = def.ScreenW, def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is the platform-facing summary of a session after a tick.
type GameState struct {
	Score    int  // Current score
	Best     int  // Highest score this process has seen
	GameOver bool // Whether the run has ended
	Ticking  bool // Whether the platform should keep scheduling ticks
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Scored int // Points awarded during this tick
}
