// Package skyshooter implements a vertical arcade shooter.
// The player steers an aircraft with a virtual joystick, fires projectiles
// and destroys targets descending from the top of the field.
package skyshooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

// Registered mode IDs.
const (
	GameID    = "skyshooter"
	ClassicID = "skyshooter_classic"
)

// configPath stores the custom config path set via CLI
var configPath string
var hitPolicy config.HitPolicy

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetHitPolicy overrides the configured collision policy.
// An empty string keeps the config value.
func SetHitPolicy(policy string) {
	hitPolicy = config.HitPolicy(policy)
}

// LoadConfig loads the shooter configuration the way Reset does,
// applying CLI overrides.
func LoadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		return config.DefaultShooterConfig(), err
	}
	if hitPolicy != "" && hitPolicy.Valid() {
		cfg.Collision.Policy = hitPolicy
	}
	return cfg, nil
}

// Game adapts a World to the arcade's Game interface.
type Game struct {
	id      string
	classic bool // movement applied once per tick, ignoring elapsed time

	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	fixed   *config.ShooterConfig // bypasses LoadConfig when set
	world   *World
	paused  bool
}

// New creates the standard game, which scales movement by frame time.
func New() *Game {
	return &Game{id: GameID}
}

// NewClassic creates the frame-coupled variant: every tick moves entities
// by their full per-frame speed no matter how long the frame took.
func NewClassic() *Game {
	return &Game{id: ClassicID, classic: true}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.ShooterConfig, classic bool) *Game {
	g := New()
	if classic {
		g = NewClassic()
	}
	g.fixed = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Sky Shooter (classic timing)"
	}
	return "Sky Shooter"
}

// Description summarizes the mode for listings.
func (g *Game) Description() string {
	if g.classic {
		return "One movement step per tick, as fast as the machine ticks"
	}
	return "Movement scaled by frame time; same speed at any frame rate"
}

// Reset builds a fresh World.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		// Fall back to defaults on a bad file; the CLI reports load errors up front.
		cfg, _ := LoadConfig()
		g.cfg = cfg
	}
	if g.classic {
		g.cfg.Timing.FrameScaled = false
	}

	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.world.Joystick.Release()
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.HandleInput(in)
	scale, elapsed := g.frameTiming(in.Elapsed)
	stats := g.world.Step(scale, elapsed)

	return core.StepResult{
		State:     g.State(),
		Spawned:   stats.Spawned,
		Destroyed: stats.Destroyed,
	}
}

// frameTiming returns the movement scale and spawn-clock advance for a
// frame that took elapsed (0 = one nominal frame).
func (g *Game) frameTiming(elapsed time.Duration) (float64, time.Duration) {
	nominal := g.runtime.FrameInterval()
	if elapsed <= 0 {
		elapsed = nominal
	}
	if !g.cfg.Timing.FrameScaled {
		return 1, elapsed
	}
	scale := float64(elapsed) / float64(nominal)
	return min(scale, g.cfg.Timing.MaxFrameScale), elapsed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(dst, g.world.Snapshot(), g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.world.Score,
		Paused: g.paused,
		Tick:   g.world.Ticks(),
	}
}

// Snapshot returns a read-only copy of the world for presenters.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// World exposes the session state.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// CellToField maps a terminal cell to field coordinates for pointer input.
func (g *Game) CellToField(col, row, screenW, screenH int) (x, y float64) {
	if g.world == nil {
		return 0, 0
	}
	v := NewViewport(screenW, screenH, g.cfg.Field.Width, g.cfg.Field.Height)
	p := v.ToField(col, row)
	return p.X, p.Y
}

// Register the game modes with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(ClassicID, func() registry.Game {
		return NewClassic()
	})
}
