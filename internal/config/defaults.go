package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/skyshooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in Sky Shooter configuration.
// It mirrors defaults/skyshooter.yaml and backs it up if the embed fails to parse.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 800,
		},
		Aircraft: AircraftConfig{
			Width:  64,
			Height: 64,
			Speed:  7,
			StartX: 240,
			StartY: 700,
		},
		Projectile: ProjectileConfig{
			Speed:     8,
			Radius:    7,
			Offset:    40,
			CullY:     -10,
			SentinelY: -100,
		},
		Target: TargetConfig{
			Width:        56,
			Height:       56,
			Speed:        1,
			BottomMargin: 60,
		},
		Spawn: SpawnConfig{
			Interval:  1200 * time.Millisecond,
			Immediate: false,
		},
		Joystick: JoystickConfig{
			OriginX:      100,
			OriginY:      700,
			Radius:       90,
			HandleRadius: 48,
			Region:       100,
		},
		Collision: CollisionConfig{
			Policy: HitPolicyCapped,
		},
		Timing: TimingConfig{
			FrameScaled:     true,
			MaxFrameScale:   3,
			KeyRepeatWindow: 120 * time.Millisecond,
			FireRearmWindow: 500 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "skyshooter", "skyshooter_classic":
		return defaultShooterYAML
	default:
		return nil
	}
}
