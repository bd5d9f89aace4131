package flappy

import "github.com/vovakirdan/face-flappy/internal/core"

// Collision identifies what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionFloor
	CollisionCeiling
	CollisionObstacle
)

// String returns a short lowercase name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionFloor:
		return "floor"
	case CollisionCeiling:
		return "ceiling"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Hit describes an obstacle the hitbox violated.
type Hit struct {
	ID     uint64
	Top    bool // Hitbox rose above the gap
	Bottom bool // Hitbox sank below the gap
}

// CheckBounds tests the unclamped bird position against the world.
// Reaching either bound counts, so a bird exactly at the floor line collides.
func CheckBounds(y, size, worldH float64) Collision {
	switch {
	case y >= worldH-size:
		return CollisionFloor
	case y <= 0:
		return CollisionCeiling
	default:
		return CollisionNone
	}
}

// Hitbox returns the collision box of a bird at (x, y), shrunk by padding on
// every side so grazing the sprite is forgiven.
func Hitbox(x, y, size, padding float64) core.Box {
	return core.NewBox(x, y, size, size).Inset(padding)
}

// CheckObstacles tests the hitbox against every obstacle and returns all
// violations. It never stops at the first hit, so the result does not depend
// on how dense the obstacles are.
func CheckObstacles(box core.Box, obstacles []Obstacle) []Hit {
	var hits []Hit
	for _, o := range obstacles {
		top, bottom := o.Barriers()
		hitTop := box.Intersects(top)
		hitBottom := box.Intersects(bottom)
		if hitTop || hitBottom {
			hits = append(hits, Hit{ID: o.ID, Top: hitTop, Bottom: hitBottom})
		}
	}
	return hits
}
