package skyshooter

// Snapshot is a read-only copy of a World for presenters and tooling.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64           `yaml:"tick"`
	Score       int              `yaml:"score"`
	Aircraft    EntitySnapshot   `yaml:"aircraft"`
	Projectiles []EntitySnapshot `yaml:"projectiles"`
	Targets     []EntitySnapshot `yaml:"targets"`
	Joystick    JoystickSnapshot `yaml:"joystick"`
	Field       FieldSnapshot    `yaml:"field"`
}

// EntitySnapshot describes one entity. Projectiles use HalfW/HalfH for
// their radius.
type EntitySnapshot struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	HalfW float64 `yaml:"half_w"`
	HalfH float64 `yaml:"half_h"`
	Alive bool    `yaml:"alive"`
}

// JoystickSnapshot describes the joystick for drawing.
type JoystickSnapshot struct {
	OriginX      float64 `yaml:"origin_x"`
	OriginY      float64 `yaml:"origin_y"`
	HandleX      float64 `yaml:"handle_x"`
	HandleY      float64 `yaml:"handle_y"`
	DirX         float64 `yaml:"dir_x"`
	DirY         float64 `yaml:"dir_y"`
	Radius       float64 `yaml:"radius"`
	HandleRadius float64 `yaml:"handle_radius"`
	Active       bool    `yaml:"active"`
}

// FieldSnapshot carries the field size.
type FieldSnapshot struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  w.ticks,
		Score: w.Score,
		Aircraft: EntitySnapshot{
			X:     w.Aircraft.Pos.X,
			Y:     w.Aircraft.Pos.Y,
			HalfW: w.Aircraft.HalfW,
			HalfH: w.Aircraft.HalfH,
			Alive: true,
		},
		Projectiles: make([]EntitySnapshot, 0, len(w.Projectiles)),
		Targets:     make([]EntitySnapshot, 0, len(w.Targets)),
		Joystick: JoystickSnapshot{
			OriginX:      w.Joystick.Origin.X,
			OriginY:      w.Joystick.Origin.Y,
			HandleX:      w.Joystick.Handle.X,
			HandleY:      w.Joystick.Handle.Y,
			DirX:         w.Joystick.Dir.X,
			DirY:         w.Joystick.Dir.Y,
			Radius:       w.Joystick.Radius,
			HandleRadius: w.cfg.Joystick.HandleRadius,
			Active:       w.Joystick.Active,
		},
		Field: FieldSnapshot{
			Width:  w.cfg.Field.Width,
			Height: w.cfg.Field.Height,
		},
	}

	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, EntitySnapshot{
			X: p.Pos.X, Y: p.Pos.Y, HalfW: p.Radius, HalfH: p.Radius, Alive: true,
		})
	}
	for _, t := range w.Targets {
		s.Targets = append(s.Targets, EntitySnapshot{
			X: t.Pos.X, Y: t.Pos.Y, HalfW: t.HalfW, HalfH: t.HalfH, Alive: t.Alive,
		})
	}

	return s
}
