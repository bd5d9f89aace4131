package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
)

// Obstacle is a vertical pair of barriers with a passable gap between them.
type Obstacle struct {
	ID        uint64  // Unique within the manager, for render-side reconciliation
	X         float64 // Left edge
	GapTop    float64 // Y where the gap starts
	GapHeight float64 // Height of the passable gap
	Width     float64
	Passed    bool // Whether the bird has cleared this obstacle (for scoring)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate where the bottom barrier starts.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapHeight
}

// Barriers returns the boxes above and below the gap. They are unbounded
// vertically, so a hitbox past the world edge still meets them.
func (o Obstacle) Barriers() (top, bottom core.Box) {
	top = core.Box{Left: o.X, Top: math.Inf(-1), Right: o.Right(), Bottom: o.GapTop}
	bottom = core.Box{Left: o.X, Top: o.GapBottom(), Right: o.Right(), Bottom: math.Inf(1)}
	return top, bottom
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// The collection is always in spawn order, which is also left-to-right order.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.FlappyObstacles
	worldW    float64
	worldH    float64
	nextID    uint64
}

// NewObstacleManager creates an obstacle manager drawing gap positions from rng.
func NewObstacleManager(rng *rand.Rand, cfg config.FlappyObstacles, worldW, worldH float64) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
		worldW:    worldW,
		worldH:    worldH,
	}
}

// Reset clears all obstacles. IDs keep increasing across resets.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// ShouldSpawn reports whether an obstacle is due at the given tick.
func (om *ObstacleManager) ShouldSpawn(tick int) bool {
	return tick > 0 && tick%om.cfg.SpawnInterval == 0
}

// Spawn appends a new obstacle at the right edge of the world.
func (om *ObstacleManager) Spawn() Obstacle {
	om.nextID++
	o := Obstacle{
		ID:        om.nextID,
		X:         om.worldW,
		GapTop:    om.gapTop(),
		GapHeight: om.cfg.GapHeight,
		Width:     om.cfg.Width,
	}
	om.obstacles = append(om.obstacles, o)
	return o
}

// gapTop draws a gap position uniformly from the whole pixels in
// [minMargin, worldH - gapHeight - minMargin].
func (om *ObstacleManager) gapTop() float64 {
	minTop := om.cfg.MinMargin
	maxTop := om.worldH - om.cfg.GapHeight - om.cfg.MinMargin
	span := int(maxTop - minTop)
	if span <= 0 {
		return minTop
	}
	return minTop + float64(om.rng.Intn(span+1))
}

// Advance moves every obstacle left by speed and drops the ones whose right
// edge has reached the prune bound left of the world.
// Returns the number of obstacles removed.
func (om *ObstacleManager) Advance(speed float64) int {
	bound := -om.cfg.PruneMargin
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.X -= speed
		if o.Right() > bound {
			kept = append(kept, o)
		}
	}
	removed := len(om.obstacles) - len(kept)
	om.obstacles = kept
	return removed
}

// Obstacles returns the active obstacles. The slice must not be retained
// across ticks; use Snapshot for a stable copy.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of active obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
