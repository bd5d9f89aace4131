package flappy

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/face-flappy/internal/core"
)

// Driver owns a Game and runs one tick per display refresh.
// Input may be recorded from any goroutine with Send; it is applied at the
// start of the next frame. Frame and Run must be called from a single goroutine.
type Driver struct {
	game   *Game
	logger *log.Logger

	mu      sync.Mutex
	pending core.InputFrame
	wake    chan struct{}

	last Snapshot
}

// NewDriver creates a driver for the given game.
// A nil logger discards all output.
func NewDriver(game *Game, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:    game,
		logger:  logger,
		pending: core.NewInputFrame(),
		wake:    make(chan struct{}, 1),
		last:    game.Snapshot(),
	}
}

// Send records an action for the next frame. Safe for concurrent use.
func (d *Driver) Send(a core.Action) {
	d.mu.Lock()
	d.pending.Set(a)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// takeInput swaps out the recorded input.
func (d *Driver) takeInput() core.InputFrame {
	d.mu.Lock()
	defer d.mu.Unlock()

	in := d.pending.Clone()
	d.pending.Clear()
	select {
	case <-d.wake:
	default:
	}
	return in
}

// Frame runs one display refresh: it applies recorded input, advances the
// game by a tick if the machine is in a ticking phase, and returns the
// snapshot taken after the tick completed.
func (d *Driver) Frame() Snapshot {
	in := d.takeInput()
	before := d.game.Phase()

	res := d.game.Step(in)

	snap := d.game.Snapshot()
	if res.Scored > 0 {
		d.logger.Debug("scored", "points", res.Scored, "score", res.State.Score, "tick", snap.Tick)
	}
	if snap.Phase != before {
		d.logTransition(before, snap)
	}
	d.last = snap
	return snap
}

// logTransition records a phase change.
func (d *Driver) logTransition(from Phase, snap Snapshot) {
	d.logger.Debug("phase change", "from", from, "to", snap.Phase, "tick", snap.Tick)
	if snap.Phase == PhaseGameOver {
		d.logger.Info("run ended",
			"score", snap.Score,
			"best", snap.Best,
			"cause", snap.Cause,
			"tick", snap.Tick,
		)
	}
}

// Ticking reports whether the next frame should be scheduled on the refresh
// signal. When false, nothing happens until new input arrives.
func (d *Driver) Ticking() bool {
	return d.last.Phase.Ticking()
}

// Snapshot returns the snapshot from the most recent frame.
func (d *Driver) Snapshot() Snapshot {
	return d.last
}

// Game returns the driven game.
func (d *Driver) Game() *Game {
	return d.game
}

// Run drives frames until ctx is done or observe returns false.
// While ticking, each value from refresh triggers a frame; otherwise the
// driver waits for input from Send instead, so no ticks are scheduled in
// START or GAME_OVER. observe is called synchronously after every frame.
func (d *Driver) Run(ctx context.Context, refresh <-chan time.Time, observe func(Snapshot) bool) error {
	for {
		if d.Ticking() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-refresh:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-d.wake:
			}
		}

		if !observe(d.Frame()) {
			return nil
		}
	}
}
