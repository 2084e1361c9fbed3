package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/games/skyshooter"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

const (
	// DefaultRepeatWindow is used when Options.RepeatWindow is zero.
	DefaultRepeatWindow = 120 * time.Millisecond
	// DefaultFireRearmWindow is used when Options.FireRearmWindow is zero.
	// Terminals start auto-repeat 250-500ms after the first press.
	DefaultFireRearmWindow = 500 * time.Millisecond
)

// fieldMapper is implemented by games that accept pointer input.
type fieldMapper interface {
	CellToField(col, row, screenW, screenH int) (x, y float64)
}

// Options tunes a game model.
type Options struct {
	// RepeatWindow is how long a key counts as held after its last press
	// or auto-repeat. Terminals report no key releases.
	RepeatWindow time.Duration

	// FireRearmWindow is how long the fire key must be quiet before the
	// next press fires again. It has to outlast the initial auto-repeat
	// delay, otherwise holding the key fires twice.
	FireRearmWindow time.Duration

	// Embedded enables the back-to-menu key; set by the SSH session.
	Embedded bool
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	latch    skyshooter.FireLatch
	lastFire time.Time
	held     map[core.Action]time.Time
	lastTick time.Time
	clock    func() time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.RepeatWindow <= 0 {
		opts.RepeatWindow = DefaultRepeatWindow
	}
	if opts.FireRearmWindow <= 0 {
		opts.FireRearmWindow = DefaultFireRearmWindow
	}

	keys := DefaultGameKeyMap()
	keys.Back.SetEnabled(opts.Embedded)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		keys:       keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
		clock:      time.Now,
	}
}

// playHeight leaves the bottom row for the help bar.
func playHeight(screenH int) int {
	return max(screenH-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	now := m.clock()

	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
	case core.ActionFire:
		m.lastFire = now
		if m.latch.Press() {
			m.inputFrame.Set(core.ActionFire)
		}
	default:
		if !isSteer(action) {
			m.inputFrame.Set(action)
			break
		}
		delete(m.held, opposite(action))
		m.held[action] = now
	}

	return m, nil
}

// opposite returns the steering action pointing the other way.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// handleMouse turns mouse events into pointer events in field coordinates.
// Only the left button steers or fires.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mapper, ok := m.game.(fieldMapper)
	if !ok {
		return m, nil
	}

	var kind core.PointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		kind = core.PointerDown
	case tea.MouseActionMotion:
		kind = core.PointerMove
	case tea.MouseActionRelease:
		kind = core.PointerUp
	default:
		return m, nil
	}

	x, y := mapper.CellToField(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
	m.inputFrame.AddPointer(core.PointerEvent{ID: 0, Kind: kind, X: x, Y: y})
	return m, nil
}

// handleResize processes window resize events. The field keeps its size,
// so the session goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		clear(m.held)
		m.latch.Release()
		return m, tickCmd(m.config.TickRate)
	}

	for a, seen := range m.held {
		if now.Sub(seen) > m.opts.RepeatWindow {
			delete(m.held, a)
			continue
		}
		m.inputFrame.Set(a)
	}
	if !m.latch.Armed() && now.Sub(m.lastFire) > m.opts.FireRearmWindow {
		m.latch.Release()
	}

	m.inputFrame.Elapsed = elapsed
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game and returns the
// final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag steers the joystick
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return core.GameState{}, nil
}
