package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/face-flappy/internal/core"
	"github.com/vovakirdan/face-flappy/internal/games/flappy"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Flap    key.Binding
	Start   key.Binding
	Menu    key.Binding
	Restart key.Binding
	Prev    key.Binding
	Next    key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Restart, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Start, k.Scores},
		{k.Flap, k.Restart, k.Menu, k.Quit},
	}
}

// ForPhase returns the bindings that do something in the given phase.
func (k GameKeyMap) ForPhase(p flappy.Phase) []key.Binding {
	switch p {
	case flappy.PhaseStart:
		return []key.Binding{k.Prev, k.Next, k.Start, k.Scores, k.Quit}
	case flappy.PhaseReady, flappy.PhasePlaying:
		return []key.Binding{k.Flap, k.Quit}
	case flappy.PhaseGameOver:
		return []key.Binding{k.Restart, k.Menu, k.Scores, k.Quit}
	}
	return []key.Binding{k.Quit}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "b", "esc"),
			key.WithHelp("m", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Flap):
		return core.ActionJump, false
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Menu):
		return core.ActionBack, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Prev):
		return core.ActionLeft, false
	case key.Matches(msg, k.Next):
		return core.ActionRight, false
	}
	return core.ActionNone, false
}
