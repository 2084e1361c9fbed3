package skyshooter

import (
	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// Aircraft is the player-controlled ship. Exactly one exists per World.
type Aircraft struct {
	Pos   core.Vec
	Vel   core.Vec
	HalfW float64
	HalfH float64
}

// Box returns the aircraft's bounding box.
func (a Aircraft) Box() core.Box {
	return core.Box{Center: a.Pos, HalfW: a.HalfW, HalfH: a.HalfH}
}

// Projectile is a fired shot travelling toward the top edge.
type Projectile struct {
	Pos    core.Vec
	Radius float64
	spent  bool // hit something this tick
}

// Target is a descending enemy sprite.
type Target struct {
	Pos   core.Vec
	HalfW float64
	HalfH float64
	Alive bool
}

// Box returns the target's hit box.
func (t Target) Box() core.Box {
	return core.Box{Center: t.Pos, HalfW: t.HalfW, HalfH: t.HalfH}
}

// World is the state of one play session: the aircraft, live projectiles
// and targets, the joystick and the score. It is created at session start
// and mutated only through Fire, HandleInput and Step.
type World struct {
	cfg config.ShooterConfig

	Aircraft    Aircraft
	Projectiles []Projectile
	Targets     []Target
	Joystick    Joystick
	Score       int

	spawner *Spawner
	ticks   uint64
}

// NewWorld creates a session with the aircraft at its start position and
// no projectiles or targets. rng feeds target placement.
func NewWorld(cfg config.ShooterConfig, rng RandSource) *World {
	w := &World{
		cfg: cfg,
		Aircraft: Aircraft{
			Pos:   core.Vec{X: cfg.Aircraft.StartX, Y: cfg.Aircraft.StartY},
			HalfW: cfg.Aircraft.Width / 2,
			HalfH: cfg.Aircraft.Height / 2,
		},
		Projectiles: make([]Projectile, 0, 16),
		Targets:     make([]Target, 0, 16),
		Joystick: NewJoystick(
			core.Vec{X: cfg.Joystick.OriginX, Y: cfg.Joystick.OriginY},
			cfg.Joystick.Radius,
			cfg.Joystick.Region,
		),
		spawner: NewSpawner(rng, cfg.Spawn.Interval, cfg.Field.Width, cfg.Target.Width, cfg.Target.Height),
	}
	if cfg.Spawn.Immediate {
		w.spawner.Prime()
	}
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.ShooterConfig {
	return w.cfg
}

// Ticks returns the number of completed Step calls.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// AddTarget places a live target centered at pos with the configured size.
func (w *World) AddTarget(pos core.Vec) {
	w.Targets = append(w.Targets, Target{
		Pos:   pos,
		HalfW: w.cfg.Target.Width / 2,
		HalfH: w.cfg.Target.Height / 2,
		Alive: true,
	})
}

// AddProjectile places a projectile at pos with the configured radius.
func (w *World) AddProjectile(pos core.Vec) {
	w.Projectiles = append(w.Projectiles, Projectile{Pos: pos, Radius: w.cfg.Projectile.Radius})
}
