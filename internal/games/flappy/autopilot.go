package flappy

// Autopilot is a simple deterministic controller used for headless runs.
// It aims the bird's center at the gap of the next obstacle it has not yet
// cleared, flapping whenever the bird is falling below that target.
type Autopilot struct {
	// Slack is how far below the target the bird may drop before flapping.
	Slack float64
}

// DefaultAutopilot returns an autopilot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{Slack: 10}
}

// Decide returns true if the bird should flap on the next frame.
func (a Autopilot) Decide(s Snapshot) bool {
	switch s.Phase {
	case PhaseReady:
		return true
	case PhasePlaying:
	default:
		return false
	}

	target := s.WorldH / 2
	for _, o := range s.Obstacles {
		if o.Right() > s.Hitbox.Left {
			target = o.GapTop + o.GapHeight/2
			break
		}
	}

	center := s.BirdY + s.BirdSize/2
	return s.Velocity >= 0 && center > target+a.Slack
}
