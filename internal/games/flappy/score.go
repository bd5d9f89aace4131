package flappy

import "github.com/vovakirdan/face-flappy/internal/core"

// Scorer tracks the current score and the high-water mark for the process.
type Scorer struct {
	score int
	best  int
}

// Award marks every unpassed obstacle whose trailing edge is behind the
// hitbox's leading edge and adds one point for each.
// Returns the points awarded.
func (s *Scorer) Award(box core.Box, obstacles []Obstacle) int {
	awarded := 0
	for i := range obstacles {
		if !obstacles[i].Passed && box.Right > obstacles[i].Right() {
			obstacles[i].Passed = true
			awarded++
		}
	}
	s.score += awarded
	return awarded
}

// Finalize raises the high-water mark to the current score if it is higher.
// Returns true if a new best was set.
func (s *Scorer) Finalize() bool {
	if s.score > s.best {
		s.best = s.score
		return true
	}
	return false
}

// Reset clears the current score. The high-water mark survives.
func (s *Scorer) Reset() {
	s.score = 0
}

// Score returns the current score.
func (s *Scorer) Score() int {
	return s.score
}

// Best returns the highest finalized score.
func (s *Scorer) Best() int {
	return s.best
}
