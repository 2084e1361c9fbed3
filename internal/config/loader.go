package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads Sky Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/skyshooter.yaml -> ./configs/skyshooter.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
func LoadShooter(customPath string) (ShooterConfig, error) {
	base := embeddedShooter()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseShooter(data, base)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyshooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseShooter(data, base); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "skyshooter.yaml")); err == nil {
		if cfg, err := ParseShooter(data, base); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// ParseShooter decodes YAML on top of base and validates the result.
func ParseShooter(data []byte, base ShooterConfig) (ShooterConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// embeddedShooter decodes the embedded default, falling back to the
// hard-coded copy.
func embeddedShooter() ShooterConfig {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every out-of-range field.
func (c ShooterConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("aircraft.width", c.Aircraft.Width)
	positive("aircraft.height", c.Aircraft.Height)
	positive("aircraft.speed", c.Aircraft.Speed)
	positive("projectile.speed", c.Projectile.Speed)
	positive("projectile.radius", c.Projectile.Radius)
	positive("target.width", c.Target.Width)
	positive("target.height", c.Target.Height)
	positive("target.speed", c.Target.Speed)
	positive("joystick.radius", c.Joystick.Radius)
	positive("joystick.handle_radius", c.Joystick.HandleRadius)
	positive("joystick.region", c.Joystick.Region)
	positive("timing.max_frame_scale", c.Timing.MaxFrameScale)

	if c.Aircraft.Width > c.Field.Width || c.Aircraft.Height > c.Field.Height {
		errs = append(errs, errors.New("aircraft does not fit in the field"))
	}
	if c.Target.Width > c.Field.Width {
		errs = append(errs, errors.New("target.width exceeds field.width"))
	}
	if c.Joystick.HandleRadius > c.Joystick.Radius {
		errs = append(errs, fmt.Errorf("joystick.handle_radius %g exceeds joystick.radius %g",
			c.Joystick.HandleRadius, c.Joystick.Radius))
	}
	if c.Projectile.SentinelY >= c.Projectile.CullY {
		errs = append(errs, fmt.Errorf("projectile.sentinel_y %g must be above cull_y %g",
			c.Projectile.SentinelY, c.Projectile.CullY))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be positive, got %s", c.Spawn.Interval))
	}
	if c.Timing.KeyRepeatWindow < 0 {
		errs = append(errs, fmt.Errorf("timing.key_repeat_window must not be negative, got %s", c.Timing.KeyRepeatWindow))
	}
	if c.Timing.FireRearmWindow < 0 {
		errs = append(errs, fmt.Errorf("timing.fire_rearm_window must not be negative, got %s", c.Timing.FireRearmWindow))
	}
	if !c.Collision.Policy.Valid() {
		errs = append(errs, fmt.Errorf("collision.policy must be %q or %q, got %q",
			HitPolicyCapped, HitPolicyNaive, c.Collision.Policy))
	}

	return errors.Join(errs...)
}
