package skyshooter

import (
	"testing"
	"time"
)

func TestSpawnerPlacement(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		x    float64
	}{
		{"left edge", 0, 28},
		{"middle", 0.5, 240},
		{"near right edge", 0.999, 28 + 0.999*424},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpawner(&fixedRand{vals: []float64{tc.u}}, time.Second, 480, 56, 56)
			tg := s.Spawn()

			if !approx(tg.Pos.X, tc.x) {
				t.Errorf("x = %f, expected %f", tg.Pos.X, tc.x)
			}
			if tg.Pos.Y != -28 {
				t.Errorf("y = %f, expected -28", tg.Pos.Y)
			}
			if tg.HalfW != 28 || tg.HalfH != 28 || !tg.Alive {
				t.Errorf("target = %+v", tg)
			}
			if tg.Pos.X < tg.HalfW || tg.Pos.X > 480-tg.HalfW {
				t.Errorf("target x %f outside [%f, %f]", tg.Pos.X, tg.HalfW, 480-tg.HalfW)
			}
		})
	}
}

func TestSpawnerAdvance(t *testing.T) {
	s := NewSpawner(&fixedRand{vals: []float64{0.25}}, 1200*time.Millisecond, 480, 56, 56)

	if _, ok := s.Advance(1200 * time.Millisecond); ok {
		t.Error("exactly one interval should not spawn yet")
	}
	if _, ok := s.Advance(time.Millisecond); !ok {
		t.Error("more than one interval should spawn")
	}
	if _, ok := s.Advance(0); ok {
		t.Error("timer should restart after a spawn")
	}

	// A long stall still yields a single target per call
	if _, ok := s.Advance(10 * time.Second); !ok {
		t.Error("stall should spawn")
	}
	if _, ok := s.Advance(0); ok {
		t.Error("stall should not queue extra spawns")
	}
	if s.Clock() != 1201*time.Millisecond+10*time.Second {
		t.Errorf("Clock() = %s", s.Clock())
	}
}

func TestSpawnerPrime(t *testing.T) {
	s := NewSpawner(&fixedRand{vals: []float64{0.25}}, 1200*time.Millisecond, 480, 56, 56)
	s.Prime()

	if _, ok := s.Advance(0); ok {
		t.Error("zero elapsed should not spawn even when primed")
	}
	if _, ok := s.Advance(16 * time.Millisecond); !ok {
		t.Fatal("first frame after Prime should spawn")
	}
	// The interval restarts from the primed spawn
	if _, ok := s.Advance(1200 * time.Millisecond); ok {
		t.Error("exactly one interval after the first spawn should not spawn")
	}
	if _, ok := s.Advance(time.Millisecond); !ok {
		t.Error("more than one interval after the first spawn should spawn")
	}
}
