package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/face-flappy/internal/config"
	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
	"github.com/vovakirdan/face-flappy/internal/storage"
)

// Rows below the playfield: HUD and help.
const chromeRows = 2

// Session holds what a game screen needs from the caller.
type Session struct {
	Driver    *flappy.Driver
	Store     *storage.Store // Optional; runs are not recorded without it
	Config    core.RuntimeConfig
	Character string // Initially selected character ID
	Logger    *log.Logger
}

// Result describes how the game screen was left.
type Result struct {
	OpenScoreboard bool
	Character      string // Character selected when leaving
}

// Model is the Bubble Tea model for the game screen.
// It runs one driver frame per display refresh while the game is ticking,
// and one frame per key press otherwise.
type Model struct {
	driver     *flappy.Driver
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	rotation   config.FlappyRotation
	characters []config.Character
	charIdx    int
	record     int // Best stored run of the selected character

	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	theme     Theme

	snap           flappy.Snapshot
	ticking        bool // A TickMsg is scheduled
	quitting       bool
	openScoreboard bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s Session) Model {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gameCfg := s.Driver.Game().Config()
	rt := s.Config.WithDefaults()

	m := Model{
		driver:     s.Driver,
		store:      s.Store,
		logger:     logger,
		config:     rt,
		rotation:   gameCfg.Rotation,
		characters: gameCfg.Characters,
		screen:     core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH)),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		theme:      DefaultTheme(),
		snap:       s.Driver.Snapshot(),
	}
	for i, c := range m.characters {
		if c.ID == s.Character {
			m.charIdx = i
		}
	}
	m.loadRecord()
	return m
}

// playfieldHeight returns the rows left for the world.
func playfieldHeight(screenH int) int {
	return max(screenH-chromeRows, 1)
}

// Init starts the tick loop if the game is already running.
// In START and GAME_OVER nothing is scheduled until a key arrives.
func (m Model) Init() tea.Cmd {
	if m.snap.Phase.Ticking() {
		return tickCmd(m.config.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.ticking = false
		return m.advance()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Scores) && !m.snap.Phase.Ticking() {
		m.openScoreboard = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionLeft, core.ActionRight:
		if m.snap.Phase == flappy.PhaseStart {
			m.selectCharacter(action)
		}
		return m, nil
	}

	m.driver.Send(action)
	if m.ticking {
		// Applied at the start of the next frame.
		return m, nil
	}
	return m.advance()
}

// selectCharacter moves the character selection.
func (m *Model) selectCharacter(a core.Action) {
	n := len(m.characters)
	if n == 0 {
		return
	}
	if a == core.ActionLeft {
		m.charIdx = (m.charIdx + n - 1) % n
	} else {
		m.charIdx = (m.charIdx + 1) % n
	}
	m.loadRecord()
}

// handleResize processes window resize events.
// The simulation runs in world units, so only the screen changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// advance runs one driver frame and schedules the next refresh if the game
// is ticking afterwards.
func (m Model) advance() (tea.Model, tea.Cmd) {
	before := m.snap.Phase
	m.snap = m.driver.Frame()

	if m.snap.Phase == flappy.PhaseGameOver && before != flappy.PhaseGameOver {
		m.saveRun()
	}

	if m.snap.Phase.Ticking() && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// saveRun records the finished run. Failures are logged and otherwise ignored.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{
		Character: m.character().ID,
		Score:     m.snap.Score,
		Ticks:     m.snap.Tick,
		Cause:     m.snap.Cause.String(),
		Seed:      m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.record = max(m.record, run.Score)
}

// loadRecord reads the best stored run for the selected character.
func (m *Model) loadRecord() {
	m.record = 0
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.character().ID)
	if err != nil {
		m.logger.Warn("could not load high score", "err", err)
		return
	}
	m.record = best
}

// character returns the selected character.
func (m Model) character() config.Character {
	if len(m.characters) == 0 {
		return config.Character{ID: "bird", Name: "BIRD"}
	}
	return m.characters[m.charIdx]
}

// Snapshot returns the snapshot from the most recent frame.
func (m Model) Snapshot() flappy.Snapshot {
	return m.snap
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.snap, ViewOptions{
		Rotation:  m.rotation,
		Character: m.character().Name,
		Record:    m.record,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.hudLine())
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keyMapper.Keys().ForPhase(m.snap.Phase)))
	return b.String()
}

// hudLine renders the status line below the playfield.
func (m Model) hudLine() string {
	t := m.theme
	sep := t.HUDSeparator.Render(" │ ")
	field := func(name string, value any) string {
		return t.HUDTitle.Render(name+" ") + t.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		field("SCORE", m.snap.Score),
		field("BEST", m.snap.Best),
	}
	if m.store != nil {
		parts = append(parts, field("RECORD", m.record))
	}
	if m.snap.Phase == flappy.PhaseStart {
		parts = append(parts, t.HUDTitle.Render("BIRD ")+t.Picker.Render("◀ "+m.character().Name+" ▶"))
	} else {
		parts = append(parts, field("BIRD", m.character().Name))
	}
	if m.snap.Phase == flappy.PhaseGameOver {
		parts = append(parts, t.HUDAlert.Render(strings.ToUpper(m.snap.Cause.String())))
	}
	return strings.Join(parts, sep)
}

// Result returns how the screen was left.
func (m Model) Result() Result {
	return Result{
		OpenScoreboard: m.openScoreboard,
		Character:      m.character().ID,
	}
}

// Run starts the Bubble Tea program for the session.
func Run(s Session) (Result, error) {
	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
