package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

// SessionModel manages the flow of one connection: menu -> game -> menu.
type SessionModel struct {
	config   core.RuntimeConfig
	opts     Options
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stale ticks from a finished game
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// The menu only lists registered modes
			return m, nil
		}

		cfg := m.menu.Config()
		cfg.Seed = time.Now().UnixNano()
		gm := NewModel(game, cfg, m.opts)
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
