package flappy

import (
	"math"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
)

// Bird is the vertical state of the controlled entity.
// Y is the top edge of its bounding box; positive velocity is downward.
type Bird struct {
	Y   float64
	Vel float64
}

// Integrate advances the bird by one tick using semi-implicit Euler:
// velocity is updated first, then position moves by the new velocity.
// A flap overrides the velocity instead of adding to it.
func Integrate(b Bird, gravity, impulse float64, flap bool) Bird {
	if flap {
		b.Vel = impulse
	} else {
		b.Vel += gravity
	}
	b.Y += b.Vel
	return b
}

// HoverY returns the bird position during the READY phase.
// It depends only on the tick, so the hover repeats identically every run.
func HoverY(center float64, tick int, h config.FlappyHover) float64 {
	return center + h.Amplitude*math.Sin(float64(tick)*h.AngularRate)
}

// Rotation returns the cosmetic tilt in degrees for a given velocity.
// It never feeds back into physics or collision.
func Rotation(vel float64, r config.FlappyRotation) float64 {
	return core.ClampF(vel*r.Factor, r.Min, r.Max)
}
