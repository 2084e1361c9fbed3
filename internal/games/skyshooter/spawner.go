package skyshooter

import (
	"time"

	"github.com/vovakirdan/skyshooter/internal/core"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Spawner emits one target per interval of accumulated real time.
type Spawner struct {
	rng      RandSource
	interval time.Duration
	clock    time.Duration // real time fed through Advance
	last     time.Duration // clock value at the previous spawn

	fieldW float64
	halfW  float64
	halfH  float64
}

// NewSpawner creates a spawner for targets of size w×h in a field fieldW wide.
func NewSpawner(rng RandSource, interval time.Duration, fieldW, w, h float64) *Spawner {
	return &Spawner{
		rng:      rng,
		interval: interval,
		fieldW:   fieldW,
		halfW:    w / 2,
		halfH:    h / 2,
	}
}

// Advance adds elapsed to the spawn clock. When more than one interval has
// passed since the last spawn it returns a new target; at most one target
// is produced per call.
func (s *Spawner) Advance(elapsed time.Duration) (Target, bool) {
	s.clock += elapsed
	if s.clock-s.last <= s.interval {
		return Target{}, false
	}
	s.last = s.clock
	return s.Spawn(), true
}

// Prime makes the next Advance with positive elapsed time spawn, as if a
// full interval had already passed.
func (s *Spawner) Prime() {
	s.last = s.clock - s.interval
}

// Spawn creates a live target just above the top edge at a random x that
// keeps it fully inside the field horizontally.
func (s *Spawner) Spawn() Target {
	span := s.fieldW - 2*s.halfW
	return Target{
		Pos: core.Vec{
			X: s.halfW + s.rng.Float64()*span,
			Y: -s.halfH,
		},
		HalfW: s.halfW,
		HalfH: s.halfH,
		Alive: true,
	}
}

// Clock returns the accumulated spawn clock.
func (s *Spawner) Clock() time.Duration {
	return s.clock
}
