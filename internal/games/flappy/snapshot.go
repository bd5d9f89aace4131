package flappy

import (
	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
)

// Snapshot captures the observable game state after a completed tick.
// It owns its obstacle slice, so it stays valid while the game keeps running.
type Snapshot struct {
	Tick      int
	Phase     Phase
	BirdX     float64
	BirdY     float64
	Velocity  float64
	BirdSize  float64
	Hitbox    core.Box
	Score     int
	Best      int
	Cause     Collision // What ended the last run, CollisionNone while running
	Hits      []Hit     // Obstacles violated on the terminal tick
	WorldW    float64
	WorldH    float64
	Obstacles []Obstacle
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, g.obstacles.Len())
	copy(obstacles, g.obstacles.Obstacles())

	var hits []Hit
	if len(g.hits) > 0 {
		hits = append(hits, g.hits...)
	}

	return Snapshot{
		Tick:      g.ticks,
		Phase:     g.phase,
		BirdX:     g.cfg.Player.X,
		BirdY:     g.bird.Y,
		Velocity:  g.bird.Vel,
		BirdSize:  g.cfg.Player.Size,
		Hitbox:    g.hitbox(),
		Score:     g.scorer.Score(),
		Best:      g.scorer.Best(),
		Cause:     g.cause,
		Hits:      hits,
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
		Obstacles: obstacles,
	}
}

// Rotation returns the cosmetic tilt for this snapshot.
// The bird only tilts once a run is underway.
func (s Snapshot) Rotation(r config.FlappyRotation) float64 {
	if s.Phase != PhasePlaying && s.Phase != PhaseGameOver {
		return 0
	}
	return Rotation(s.Velocity, r)
}

// Hit reports whether the obstacle with the given ID ended the run.
func (s Snapshot) Hit(id uint64) bool {
	for _, h := range s.Hits {
		if h.ID == id {
			return true
		}
	}
	return false
}
