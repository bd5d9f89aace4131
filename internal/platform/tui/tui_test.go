package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
	"github.com/vovakirdan/face-flappy/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestSession(t *testing.T, store *storage.Store) Session {
	t.Helper()
	g, err := flappy.New(config.DefaultFlappyConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	return Session{
		Driver: flappy.NewDriver(g, nil),
		Store:  store,
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{runeKey('w'), core.ActionJump, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{runeKey('m'), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('l'), core.ActionRight, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
		}
	}
}

func TestModelFillsRuntimeDefaults(t *testing.T) {
	s := newTestSession(t, nil)
	s.Config = core.RuntimeConfig{Seed: 7}

	m := NewModel(s)
	if m.config.TickRate != 60 || m.config.Seed != 7 {
		t.Errorf("config = %+v, expected default rate with the seed kept", m.config)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 24-chromeRows {
		t.Errorf("screen = %dx%d, expected the default terminal size", m.screen.Width(), m.screen.Height())
	}
}

func TestModelStartIsIdle(t *testing.T) {
	m := NewModel(newTestSession(t, nil))

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not schedule ticks in START")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil || m.Snapshot().Phase != flappy.PhaseStart {
		t.Errorf("flap in START should do nothing, phase=%v", m.Snapshot().Phase)
	}
}

func TestModelEnterStartsTicking(t *testing.T) {
	m := NewModel(newTestSession(t, nil))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Snapshot().Phase != flappy.PhaseReady {
		t.Fatalf("phase = %v, expected READY", m.Snapshot().Phase)
	}
	if cmd == nil || !m.ticking {
		t.Error("entering READY should schedule a tick")
	}

	// A key while ticking waits for the next refresh.
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd != nil || m.Snapshot().Phase != flappy.PhaseReady {
		t.Errorf("input must be applied on the next frame, phase=%v", m.Snapshot().Phase)
	}

	m, cmd = update(t, m, TickMsg{})
	if m.Snapshot().Phase != flappy.PhasePlaying {
		t.Errorf("phase = %v after tick, expected PLAYING", m.Snapshot().Phase)
	}
	if cmd == nil {
		t.Error("PLAYING should keep ticking")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(newTestSession(t, store))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	var cmd tea.Cmd
	for i := 0; i < 2000 && m.Snapshot().Phase != flappy.PhaseGameOver; i++ {
		m, cmd = update(t, m, TickMsg{})
	}

	if m.Snapshot().Phase != flappy.PhaseGameOver {
		t.Fatalf("bird never fell, phase=%v", m.Snapshot().Phase)
	}
	if cmd != nil || m.ticking {
		t.Error("GAME_OVER must stop the tick loop")
	}

	// Extra messages in GAME_OVER must not record the run again.
	m, _ = update(t, m, TickMsg{})
	update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	runs, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs))
	}
	if runs[0].Character != "katappa" || runs[0].Cause != "floor" || runs[0].Seed != 1 {
		t.Errorf("unexpected run record %+v", runs[0])
	}
}

func TestModelCharacterSelection(t *testing.T) {
	m := NewModel(newTestSession(t, nil))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Result().Character != "guruji" {
		t.Errorf("character = %q, expected guruji", m.Result().Character)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Result().Character != "awara" {
		t.Errorf("character = %q, expected selection to wrap to awara", m.Result().Character)
	}

	// Selection is locked once a session begins.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Result().Character != "awara" {
		t.Errorf("character changed outside START: %q", m.Result().Character)
	}
}

func TestModelScoreboardKey(t *testing.T) {
	m := NewModel(newTestSession(t, nil))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd == nil || !m.Result().OpenScoreboard {
		t.Error("tab in START should leave for the scoreboard")
	}

	m = NewModel(newTestSession(t, nil))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Result().OpenScoreboard {
		t.Error("tab must be ignored while the game is ticking")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(newTestSession(t, nil))

	view := m.View()
	if !strings.Contains(view, "KATAPPA") || !strings.Contains(view, "SCORE") {
		t.Errorf("START view missing character or HUD:\n%s", view)
	}

	m, _ = update(t, m, runeKey('q'))
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

// screenRow returns row y of the screen as plain text.
func screenRow(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestDrawWorld(t *testing.T) {
	s := core.NewScreen(40, 30) // 10 world units per column, 20 per row
	snap := flappy.Snapshot{
		Phase:    flappy.PhasePlaying,
		BirdX:    50,
		BirdY:    280,
		BirdSize: 40,
		WorldW:   400,
		WorldH:   600,
		Obstacles: []flappy.Obstacle{
			{ID: 1, X: 200, GapTop: 200, GapHeight: 160, Width: 60},
		},
	}

	DrawWorld(s, snap, ViewOptions{Rotation: config.DefaultFlappyConfig().Rotation})

	// Obstacle spans columns 20..25, gap rows 10..17.
	if s.GetCell(22, 0).Rune != '█' || s.GetCell(22, 29).Rune != '█' {
		t.Error("barriers should fill from the edges")
	}
	if got := s.GetCell(22, 12).Rune; got != ' ' {
		t.Errorf("gap cell = %q, expected open space", got)
	}
	if s.GetCell(22, 0).Color != core.ColorGreen {
		t.Error("untouched obstacle should be green")
	}

	// Bird center (70, 300) lands on column 7, row 15.
	if got := screenRow(s, 15)[6:9]; got != "(o>" {
		t.Errorf("bird glyph = %q, expected level sprite", got)
	}
}

func TestDrawWorldHitObstacle(t *testing.T) {
	s := core.NewScreen(40, 30)
	snap := flappy.Snapshot{
		Phase:     flappy.PhaseGameOver,
		Cause:     flappy.CollisionObstacle,
		BirdSize:  40,
		WorldW:    400,
		WorldH:    600,
		Obstacles: []flappy.Obstacle{{ID: 4, X: 200, GapTop: 200, GapHeight: 160, Width: 60}},
		Hits:      []flappy.Hit{{ID: 4, Top: true}},
	}

	DrawWorld(s, snap, ViewOptions{})

	if s.GetCell(22, 0).Color != core.ColorRed {
		t.Error("the obstacle that ended the run should be drawn red")
	}
	if !strings.Contains(s.String(), "GAME OVER") || !strings.Contains(s.String(), "hit an obstacle") {
		t.Errorf("game over overlay missing:\n%s", s.String())
	}

	// The panel is 22 cells wide (longest line plus borders and padding) and
	// spans rows 9..16 around the third of the height.
	corners := map[[2]int]rune{
		{9, 9}:   '┌',
		{30, 9}:  '┐',
		{9, 16}:  '└',
		{30, 16}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]); got.Rune != want || got.Color != core.ColorWhite {
			t.Errorf("panel corner at %v = %+v, expected white %q", pos, got, want)
		}
	}
	// The panel covers the barrier lip behind it.
	if got := s.GetCell(22, 9).Rune; got != '─' {
		t.Errorf("panel border over obstacle = %q, expected '─'", got)
	}
}

func TestBirdGlyph(t *testing.T) {
	tests := []struct {
		deg      float64
		expected string
	}{
		{-25, "/o>"},
		{-10, "/o>"},
		{0, "(o>"},
		{29, "(o>"},
		{30, "\\o>"},
		{90, "\\o>"},
	}

	for _, tc := range tests {
		if got := birdGlyph(tc.deg); got != tc.expected {
			t.Errorf("birdGlyph(%v) = %q, expected %q", tc.deg, got, tc.expected)
		}
	}
}

func TestScoreboardFilters(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Run{
		{Character: "katappa", Score: 3},
		{Character: "guruji", Score: 8},
		{Character: "katappa", Score: 5},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	chars := config.DefaultFlappyConfig().Characters

	m := NewScoreboardModel(store, chars, 100, 30)
	if len(m.Runs()) != 3 {
		t.Fatalf("ALL should list 3 runs, got %d", len(m.Runs()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Runs()) != 2 || m.Runs()[0].Score != 5 {
		t.Errorf("KATAPPA should list its 2 runs best first, got %+v", m.Runs())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.Runs()) != 0 {
		t.Errorf("AWARA has no runs, got %+v", m.Runs())
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty filter should show the empty message")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the game")
	}
}

func TestModelBestIgnoresStoredRuns(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{Character: "katappa", Score: 50}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewModel(newTestSession(t, store))

	hud := m.hudLine()
	if !strings.Contains(hud, "BEST 0") || !strings.Contains(hud, "RECORD 50") {
		t.Errorf("session best must start at 0 with the record shown apart, got %q", hud)
	}
}
