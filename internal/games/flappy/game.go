// Package flappy implements the deterministic simulation of a Flappy Bird-style
// game: a bird falls under gravity, the player flaps, and the bird must pass
// through gaps in a stream of obstacles.
//
// The package holds no I/O. A Game is a single owned simulation record that is
// mutated synchronously once per tick; observers read Snapshots taken between
// ticks.
package flappy

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
)

// Game implements the flappy game logic.
type Game struct {
	cfg       config.FlappyConfig
	phase     Phase
	bird      Bird
	impulse   bool // Flap waiting for the next tick
	ticks     int  // Spawn cadence and hover phase
	obstacles *ObstacleManager
	scorer    Scorer
	cause     Collision
	hits      []Hit
}

// New creates a game in the START phase.
// Gap positions are drawn from src, so a seeded source makes runs reproducible.
// An invalid configuration is rejected here since no session could run with it.
func New(cfg config.FlappyConfig, src rand.Source) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("flappy: random source is required")
	}

	g := &Game{
		cfg:   cfg,
		phase: PhaseStart,
		obstacles: NewObstacleManager(
			rand.New(src),
			cfg.Obstacles,
			cfg.World.Width,
			cfg.World.Height,
		),
	}
	g.bird = Bird{Y: g.centerY()}
	return g, nil
}

// Step applies one frame of input and then advances the simulation by one
// tick if the resulting phase is a ticking one.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !in.Empty() {
		for _, fe := range frameEvents {
			if in.Has(fe.action) {
				g.Handle(fe.event)
			}
		}
	}

	scored := 0
	if g.phase.Ticking() {
		scored = g.Update()
	}

	return core.StepResult{State: g.State(), Scored: scored}
}

// Update advances the simulation by one tick for the current phase.
// Returns the points awarded during the tick.
func (g *Game) Update() int {
	switch g.phase {
	case PhaseReady:
		g.ticks++
		g.bird.Y = HoverY(g.centerY(), g.ticks, g.cfg.Hover)
		return 0
	case PhasePlaying:
		return g.tickPlaying()
	}
	return 0
}

// tickPlaying runs physics, obstacles, collision and scoring, in that order.
func (g *Game) tickPlaying() int {
	phys := g.cfg.Physics

	g.bird = Integrate(g.bird, phys.Gravity, phys.JumpImpulse, g.impulse)
	g.impulse = false

	g.ticks++
	if g.obstacles.ShouldSpawn(g.ticks) {
		g.obstacles.Spawn()
	}

	// Bounds are read after the overshoot, never clamped.
	if c := CheckBounds(g.bird.Y, g.cfg.Player.Size, g.cfg.World.Height); c != CollisionNone {
		g.endRun(c)
		return 0
	}

	g.obstacles.Advance(phys.ScrollSpeed)

	box := g.hitbox()
	if hits := CheckObstacles(box, g.obstacles.Obstacles()); len(hits) > 0 {
		g.hits = hits
		g.endRun(CollisionObstacle)
		return 0
	}

	return g.scorer.Award(box, g.obstacles.Obstacles())
}

// hitbox returns the bird's current collision box.
func (g *Game) hitbox() core.Box {
	p := g.cfg.Player
	return Hitbox(p.X, g.bird.Y, p.Size, p.HitboxPadding)
}

// centerY returns the world's vertical center.
func (g *Game) centerY() float64 {
	return g.cfg.World.Height / 2
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns the session configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorer.Score(),
		Best:     g.scorer.Best(),
		GameOver: g.phase == PhaseGameOver,
		Ticking:  g.phase.Ticking(),
	}
}
