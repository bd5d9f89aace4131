package flappy

import "github.com/vovakirdan/face-flappy/internal/core"

// Phase is a state of the game's state machine.
type Phase int

const (
	PhaseStart    Phase = iota // Selection screen, no simulation
	PhaseReady                 // Pre-game hover, no gravity, no obstacles
	PhasePlaying               // Full simulation
	PhaseGameOver              // Terminal, simulation frozen
)

// String returns the canonical name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseReady:
		return "READY"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Ticking reports whether the driver should schedule ticks in this phase.
func (p Phase) Ticking() bool {
	return p == PhaseReady || p == PhasePlaying
}

// Event is an input event that may drive a transition.
type Event int

const (
	EventBegin   Event = iota // begin_session
	EventImpulse              // impulse
	EventRestart              // restart
	EventMenu                 // return_to_menu
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventBegin:
		return "begin_session"
	case EventImpulse:
		return "impulse"
	case EventRestart:
		return "restart"
	case EventMenu:
		return "return_to_menu"
	default:
		return "unknown"
	}
}

// frameEvents maps platform actions to events, in the order they are applied
// when several arrive within one frame.
var frameEvents = []struct {
	action core.Action
	event  Event
}{
	{core.ActionBack, EventMenu},
	{core.ActionRestart, EventRestart},
	{core.ActionConfirm, EventBegin},
	{core.ActionJump, EventImpulse},
}

// Handle applies an input event to the state machine.
// Events the current phase does not accept are silent no-ops.
// Returns true if the event had an effect.
func (g *Game) Handle(ev Event) bool {
	switch ev {
	case EventBegin:
		if g.phase != PhaseStart {
			return false
		}
		g.resetSession()
		return true

	case EventImpulse:
		switch g.phase {
		case PhaseReady:
			// The hover is cosmetic: the run starts from the center at rest,
			// with the impulse already applied.
			g.phase = PhasePlaying
			g.bird = Bird{Y: g.centerY(), Vel: g.cfg.Physics.JumpImpulse}
			g.impulse = true
			g.ticks = 0 // Keeps the first spawn at the same point in every run
			return true
		case PhasePlaying:
			g.impulse = true
			return true
		}
		return false

	case EventRestart:
		if g.phase != PhaseGameOver {
			return false
		}
		g.resetSession()
		return true

	case EventMenu:
		if g.phase != PhaseGameOver {
			return false
		}
		g.phase = PhaseStart
		return true
	}

	return false
}

// resetSession prepares a fresh run in the READY phase.
func (g *Game) resetSession() {
	g.phase = PhaseReady
	g.scorer.Reset()
	g.bird = Bird{Y: g.centerY()}
	g.impulse = false
	g.ticks = 0
	g.cause = CollisionNone
	g.hits = nil
	g.obstacles.Reset()
}

// endRun moves the machine into GAME_OVER.
// Only the first call per run has any effect, so a collision reported on
// consecutive ticks finalizes the score exactly once.
func (g *Game) endRun(cause Collision) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.phase = PhaseGameOver
	g.cause = cause
	g.scorer.Finalize()
	return true
}
