package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that a session can run with this configuration.
// It reports every violated rule at once.
func (c FlappyConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	w, o, p := c.World, c.Obstacles, c.Player

	// NaN fails every comparison below, so it has to be caught first.
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			fail("%s must be a finite number, got %v", f.name, f.value)
		}
	}

	if w.Width <= 0 || w.Height <= 0 {
		fail("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	if c.Physics.Gravity < 0 {
		fail("gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		fail("jump impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.ScrollSpeed <= 0 {
		fail("scroll speed must be positive, got %v", c.Physics.ScrollSpeed)
	}
	if o.Width <= 0 {
		fail("obstacle width must be positive, got %v", o.Width)
	}
	if o.GapHeight <= 0 {
		fail("gap height must be positive, got %v", o.GapHeight)
	}
	if o.SpawnInterval <= 0 {
		fail("spawn interval must be positive, got %d", o.SpawnInterval)
	}
	if o.MinMargin < 0 {
		fail("gap margin must not be negative, got %v", o.MinMargin)
	}
	if o.PruneMargin < 0 {
		fail("prune margin must not be negative, got %v", o.PruneMargin)
	}
	if o.GapHeight+2*o.MinMargin > w.Height {
		fail("gap height %v with margin %v does not fit in world height %v", o.GapHeight, o.MinMargin, w.Height)
	}
	if p.Size <= 0 || p.Size >= w.Height {
		fail("player size %v must be positive and smaller than world height %v", p.Size, w.Height)
	}
	if p.HitboxPadding < 0 || 2*p.HitboxPadding >= p.Size {
		fail("hitbox padding %v must leave a non-empty hitbox for size %v", p.HitboxPadding, p.Size)
	}
	if p.X < 0 || p.X+p.Size > w.Width {
		fail("player x %v must keep the player inside world width %v", p.X, w.Width)
	}
	if c.Rotation.Min > c.Rotation.Max {
		fail("rotation range [%v, %v] is inverted", c.Rotation.Min, c.Rotation.Max)
	}

	seen := make(map[string]bool, len(c.Characters))
	for i, ch := range c.Characters {
		switch {
		case ch.ID == "":
			fail("character %d has no id", i)
		case seen[ch.ID]:
			fail("character id %q is used twice", ch.ID)
		}
		seen[ch.ID] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
}

type floatField struct {
	name  string
	value float64
}

// floatFields lists every float setting by its YAML path.
func (c FlappyConfig) floatFields() []floatField {
	return []floatField{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_impulse", c.Physics.JumpImpulse},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.min_margin", c.Obstacles.MinMargin},
		{"obstacles.prune_margin", c.Obstacles.PruneMargin},
		{"player.x", c.Player.X},
		{"player.size", c.Player.Size},
		{"player.hitbox_padding", c.Player.HitboxPadding},
		{"hover.amplitude", c.Hover.Amplitude},
		{"hover.angular_rate", c.Hover.AngularRate},
		{"rotation.factor", c.Rotation.Factor},
		{"rotation.min", c.Rotation.Min},
		{"rotation.max", c.Rotation.Max},
	}
}
