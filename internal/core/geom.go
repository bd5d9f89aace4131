// Package core provides fundamental types and utilities shared by the
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an integer, cell-aligned rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world (pixel) coordinates.
// Simulation hitboxes are real-valued, unlike screen rectangles.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Inset shrinks the box by pad on every side.
func (b Box) Inset(pad float64) Box {
	return Box{
		Left:   b.Left + pad,
		Top:    b.Top + pad,
		Right:  b.Right - pad,
		Bottom: b.Bottom - pad,
	}
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not overlap.
func (b Box) Intersects(other Box) bool {
	if b.Left >= other.Right || other.Left >= b.Right {
		return false
	}
	if b.Top >= other.Bottom || other.Top >= b.Bottom {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
