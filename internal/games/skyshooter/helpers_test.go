package skyshooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

const eps = 1e-9

// fixedRand replays the given values in order, wrapping around.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// newTestWorld builds a world from the default config with optional tweaks.
func newTestWorld(t *testing.T, mutate func(*config.ShooterConfig)) *World {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return NewWorld(cfg, &fixedRand{vals: []float64{0.5}})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b core.Vec) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
