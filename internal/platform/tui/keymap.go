package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Fire    key.Binding
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the standard bindings: arrows, WASD and hjkl
// steer, space fires.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Left, k.Right, k.Up, k.Down, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Pause, k.Restart},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// isSteer reports whether a is one of the four steering actions.
func isSteer(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// MenuKeyMap holds the mode picker bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the standard menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
