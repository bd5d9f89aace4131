package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
)

// ViewOptions carries the presentation details that are not part of a
// simulation snapshot.
type ViewOptions struct {
	Rotation  config.FlappyRotation
	Character string // Display name of the selected character
	Record    int    // Best stored run of the character, 0 if none
}

// Tilt thresholds in degrees for picking the bird glyph.
const (
	tiltUp   = -10.0
	tiltDown = 30.0
)

// DrawWorld renders a snapshot onto the screen, scaling world units to cells.
func DrawWorld(s *core.Screen, snap flappy.Snapshot, opts ViewOptions) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 || snap.WorldW <= 0 || snap.WorldH <= 0 {
		return
	}
	sx := float64(w) / snap.WorldW
	sy := float64(h) / snap.WorldH

	for _, o := range snap.Obstacles {
		drawObstacle(s, o, sx, sy, snap.Hit(o.ID))
	}
	drawBird(s, snap, opts.Rotation, sx, sy)
	drawOverlay(s, snap, opts)
}

// drawObstacle draws the two barriers of an obstacle. The gap is rounded
// inward so a cell that shows open space is open in the world.
func drawObstacle(s *core.Screen, o flappy.Obstacle, sx, sy float64, hit bool) {
	x0 := int(math.Floor(o.X * sx))
	x1 := int(math.Ceil(o.Right() * sx))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	gapTop := int(math.Ceil(o.GapTop * sy))
	gapBottom := int(math.Floor(o.GapBottom() * sy))
	if gapBottom < gapTop {
		gapBottom = gapTop
	}

	c := core.ColorGreen
	if hit {
		c = core.ColorRed
	}

	s.DrawRect(core.NewRect(x0, 0, x1-x0, gapTop), '█', c)
	s.DrawRect(core.NewRect(x0, gapBottom, x1-x0, s.Height()-gapBottom), '█', c)
	// Lips at the gap edges
	s.DrawHLine(x0, gapTop-1, x1-x0, '▀', core.ColorBrightGreen)
	s.DrawHLine(x0, gapBottom, x1-x0, '▄', core.ColorBrightGreen)
}

// drawBird draws the bird glyph at the center of its bounding box.
func drawBird(s *core.Screen, snap flappy.Snapshot, rot config.FlappyRotation, sx, sy float64) {
	cx := int((snap.BirdX + snap.BirdSize/2) * sx)
	cy := int(math.Floor((snap.BirdY + snap.BirdSize/2) * sy))
	cy = core.Clamp(cy, 0, s.Height()-1)

	c := core.ColorBrightYellow
	if snap.Phase == flappy.PhaseGameOver {
		c = core.ColorRed
	}
	s.DrawTextColored(cx-1, cy, birdGlyph(snap.Rotation(rot)), c)
}

// birdGlyph picks a sprite for the tilt.
func birdGlyph(deg float64) string {
	switch {
	case deg <= tiltUp:
		return "/o>"
	case deg >= tiltDown:
		return "\\o>"
	default:
		return "(o>"
	}
}

// drawOverlay draws the per-phase text on top of the playfield.
func drawOverlay(s *core.Screen, snap flappy.Snapshot, opts ViewOptions) {
	mid := s.Height() / 3

	switch snap.Phase {
	case flappy.PhaseStart:
		s.DrawTextCentered(mid, "F L A P P Y", core.ColorBrightYellow)
		s.DrawTextCentered(mid+2, fmt.Sprintf("< %s >", opts.Character), core.ColorBrightWhite)
		s.DrawTextCentered(mid+4, "press enter to start", core.ColorGray)
		if snap.Best > 0 {
			s.DrawTextCentered(mid+5, fmt.Sprintf("best %d", snap.Best), core.ColorGray)
		}
		if opts.Record > 0 {
			s.DrawTextCentered(mid+6, fmt.Sprintf("record %d", opts.Record), core.ColorGray)
		}

	case flappy.PhaseReady:
		s.DrawTextCentered(mid, "GET READY", core.ColorSky)
		s.DrawTextCentered(mid+1, "space to flap", core.ColorGray)

	case flappy.PhasePlaying:
		s.DrawTextCentered(1, fmt.Sprintf("%d", snap.Score), core.ColorBrightWhite)

	case flappy.PhaseGameOver:
		result := fmt.Sprintf("score %d   best %d", snap.Score, snap.Best)
		cause := causeText(snap.Cause)
		hint := "r restart   m menu"
		drawPanel(s, mid-1, 8, "GAME OVER", result, cause, hint)

		s.DrawTextCentered(mid, "GAME OVER", core.ColorRed)
		s.DrawTextCentered(mid+2, result, core.ColorBrightWhite)
		s.DrawTextCentered(mid+3, cause, core.ColorGray)
		s.DrawTextCentered(mid+5, hint, core.ColorGray)
	}
}

// drawPanel clears a bordered, horizontally centered area starting at row top,
// wide enough for the longest of lines.
func drawPanel(s *core.Screen, top, height int, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+4, s.Width())
	r := core.NewRect((s.Width()-width)/2, top, width, height)

	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorWhite)
}

// causeText describes what ended a run.
func causeText(c flappy.Collision) string {
	switch c {
	case flappy.CollisionFloor:
		return "hit the ground"
	case flappy.CollisionCeiling:
		return "flew too high"
	case flappy.CollisionObstacle:
		return "hit an obstacle"
	}
	return ""
}
