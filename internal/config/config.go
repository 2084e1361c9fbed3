// Package config provides YAML-based game configuration loading for the
// shooter.
package config

import "time"

// ShooterConfig contains all configuration for Sky Shooter.
// Values are fixed for the lifetime of a session.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Aircraft   AircraftConfig   `yaml:"aircraft"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Target     TargetConfig     `yaml:"target"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Joystick   JoystickConfig   `yaml:"joystick"`
	Collision  CollisionConfig  `yaml:"collision"`
	Timing     TimingConfig     `yaml:"timing"`
}

// FieldConfig defines the play area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AircraftConfig defines the player aircraft.
type AircraftConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Field units per nominal frame at full deflection
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// ProjectileConfig defines fired projectiles.
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"` // Upward field units per nominal frame
	Radius    float64 `yaml:"radius"`
	Offset    float64 `yaml:"offset"`     // Spawn distance above the aircraft center
	CullY     float64 `yaml:"cull_y"`     // Projectiles at or above this y are pruned
	SentinelY float64 `yaml:"sentinel_y"` // Where spent projectiles are parked until pruned
}

// TargetConfig defines descending targets.
type TargetConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Downward field units per nominal frame
	BottomMargin float64 `yaml:"bottom_margin"` // Distance past the bottom edge before pruning
}

// SpawnConfig defines the target spawn timer.
type SpawnConfig struct {
	Interval time.Duration `yaml:"interval"`
	// Immediate spawns the first target on the first tick instead of
	// waiting out one interval.
	Immediate bool `yaml:"immediate"`
}

// JoystickConfig defines the virtual joystick.
type JoystickConfig struct {
	OriginX      float64 `yaml:"origin_x"`
	OriginY      float64 `yaml:"origin_y"`
	Radius       float64 `yaml:"radius"`
	HandleRadius float64 `yaml:"handle_radius"`
	Region       float64 `yaml:"region"` // Half-size of the square that captures pointers
}

// CollisionConfig selects how multiple hits in one tick are scored.
type CollisionConfig struct {
	Policy HitPolicy `yaml:"policy"`
}

// TimingConfig controls frame-time handling.
type TimingConfig struct {
	// FrameScaled multiplies per-frame movement by elapsed/frameInterval.
	// When false, movement is applied once per tick regardless of elapsed time.
	FrameScaled bool `yaml:"frame_scaled"`
	// MaxFrameScale caps the multiplier after a stall.
	MaxFrameScale float64 `yaml:"max_frame_scale"`
	// KeyRepeatWindow is how long the terminal front end treats a key as
	// held after its last repeat event.
	KeyRepeatWindow time.Duration `yaml:"key_repeat_window"`
	// FireRearmWindow is how long the fire key must stay quiet before the
	// terminal front end accepts another shot. It must cover the terminal's
	// initial auto-repeat delay or a held key fires twice.
	FireRearmWindow time.Duration `yaml:"fire_rearm_window"`
}

// HitPolicy controls scoring when several projectiles overlap one target.
type HitPolicy string

const (
	// HitPolicyCapped scores each target at most once per tick.
	HitPolicyCapped HitPolicy = "capped"
	// HitPolicyNaive scores every overlapping (target, projectile) pair.
	HitPolicyNaive HitPolicy = "naive"
)

// Valid reports whether p is a known policy.
func (p HitPolicy) Valid() bool {
	return p == HitPolicyCapped || p == HitPolicyNaive
}
