package skyshooter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyshooter/internal/core"
)

func TestMapPointerInsideRadius(t *testing.T) {
	origin := core.Vec{X: 60, Y: 60}
	const radius = 90.0

	tests := []struct {
		name   string
		offset core.Vec
	}{
		{"right", core.Vec{X: 45, Y: 0}},
		{"up-left", core.Vec{X: -30, Y: -40}},
		{"on rim", core.Vec{X: 0, Y: 90}},
		{"tiny", core.Vec{X: 0.001, Y: -0.002}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handle, dir := MapPointer(origin.Add(tc.offset), origin, radius)
			if !vecApprox(handle, origin.Add(tc.offset)) {
				t.Errorf("handle = %v, expected %v", handle, origin.Add(tc.offset))
			}
			if !vecApprox(dir, tc.offset.Scale(1/radius)) {
				t.Errorf("dir = %v, expected %v", dir, tc.offset.Scale(1/radius))
			}
		})
	}
}

func TestMapPointerClampsToUnitCircle(t *testing.T) {
	origin := core.Vec{X: 60, Y: 60}
	const radius = 90.0

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		angle := rng.Float64() * 2 * math.Pi
		dist := radius + 1 + rng.Float64()*1000
		offset := core.Vec{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}

		handle, dir := MapPointer(origin.Add(offset), origin, radius)

		if math.Abs(dir.Len()-1) > eps {
			t.Fatalf("offset %v: |dir| = %.12f, expected 1", offset, dir.Len())
		}
		if got := math.Atan2(dir.Y, dir.X); math.Abs(math.Remainder(got-math.Atan2(offset.Y, offset.X), 2*math.Pi)) > eps {
			t.Fatalf("offset %v: direction angle changed", offset)
		}
		if math.Abs(handle.Sub(origin).Len()-radius) > 1e-6 {
			t.Fatalf("offset %v: handle not on rim: %v", offset, handle)
		}
	}
}

func TestMapPointerMagnitudeNeverExceedsOne(t *testing.T) {
	origin := core.Vec{X: 100, Y: 700}
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		raw := core.Vec{X: rng.Float64()*960 - 240, Y: rng.Float64()*1600 - 400}
		_, dir := MapPointer(raw, origin, 90)
		if dir.X*dir.X+dir.Y*dir.Y > 1+eps {
			t.Fatalf("raw %v: dx²+dy² = %f", raw, dir.X*dir.X+dir.Y*dir.Y)
		}
	}
}

func TestMapPointerZeroOffset(t *testing.T) {
	origin := core.Vec{X: 60, Y: 60}
	handle, dir := MapPointer(origin, origin, 90)
	if handle != origin || dir != (core.Vec{}) {
		t.Errorf("zero offset: handle=%v dir=%v, expected origin and (0,0)", handle, dir)
	}

	// Degenerate radius never divides by zero
	handle, dir = MapPointer(core.Vec{X: 80, Y: 60}, origin, 0)
	if handle != origin || dir != (core.Vec{}) {
		t.Errorf("zero radius: handle=%v dir=%v", handle, dir)
	}
}

func TestJoystickRelease(t *testing.T) {
	j := NewJoystick(core.Vec{X: 60, Y: 60}, 90, 60)
	j.Move(core.Vec{X: 200, Y: 60})

	if !j.Active || !vecApprox(j.Dir, core.Vec{X: 1, Y: 0}) {
		t.Fatalf("after Move: active=%v dir=%v", j.Active, j.Dir)
	}

	j.Release()
	if j.Active {
		t.Error("Release should deactivate the joystick")
	}
	if j.Handle != j.Origin {
		t.Errorf("handle = %v, expected origin %v", j.Handle, j.Origin)
	}
	if j.Dir != (core.Vec{}) {
		t.Errorf("dir = %v, expected (0,0)", j.Dir)
	}
}

func TestJoystickPointerCapture(t *testing.T) {
	j := NewJoystick(core.Vec{X: 100, Y: 700}, 90, 100)

	// Press inside the region captures
	if tap := j.HandlePointer(core.PointerEvent{ID: 1, Kind: core.PointerDown, X: 145, Y: 700}); tap {
		t.Fatal("press inside region should not be a tap")
	}
	if !j.Active || !vecApprox(j.Dir, core.Vec{X: 0.5, Y: 0}) {
		t.Fatalf("after press: active=%v dir=%v", j.Active, j.Dir)
	}

	// Captured pointer keeps steering outside the region
	j.HandlePointer(core.PointerEvent{ID: 1, Kind: core.PointerMove, X: 100, Y: 300})
	if !vecApprox(j.Dir, core.Vec{X: 0, Y: -1}) {
		t.Errorf("captured move outside region: dir = %v, expected (0,-1)", j.Dir)
	}

	// Other pointers do not steer, and a press elsewhere is a tap
	j.HandlePointer(core.PointerEvent{ID: 2, Kind: core.PointerMove, X: 190, Y: 700})
	if !vecApprox(j.Dir, core.Vec{X: 0, Y: -1}) {
		t.Errorf("foreign move changed dir to %v", j.Dir)
	}
	if tap := j.HandlePointer(core.PointerEvent{ID: 2, Kind: core.PointerDown, X: 400, Y: 200}); !tap {
		t.Error("second pointer outside region should tap")
	}
	if tap := j.HandlePointer(core.PointerEvent{ID: 2, Kind: core.PointerDown, X: 110, Y: 700}); tap {
		t.Error("second pointer inside captured region should be ignored, not tap")
	}

	// Foreign release is ignored, owner release resets
	j.HandlePointer(core.PointerEvent{ID: 2, Kind: core.PointerUp})
	if !j.Active {
		t.Error("foreign release should not reset the joystick")
	}
	j.HandlePointer(core.PointerEvent{ID: 1, Kind: core.PointerUp})
	if j.Active || j.Dir != (core.Vec{}) || j.Handle != j.Origin {
		t.Errorf("owner release should reset, got active=%v dir=%v handle=%v", j.Active, j.Dir, j.Handle)
	}
}

func TestJoystickTapOutsideRegion(t *testing.T) {
	j := NewJoystick(core.Vec{X: 100, Y: 700}, 90, 100)

	if tap := j.HandlePointer(core.PointerEvent{Kind: core.PointerDown, X: 300, Y: 400}); !tap {
		t.Error("press outside region should be a tap")
	}
	if j.Active {
		t.Error("tap should not activate the joystick")
	}

	// Moves without a capture do nothing
	j.HandlePointer(core.PointerEvent{Kind: core.PointerMove, X: 150, Y: 700})
	if j.Active {
		t.Error("uncaptured move should not activate the joystick")
	}
}

func TestJoystickSteer(t *testing.T) {
	j := NewJoystick(core.Vec{X: 100, Y: 700}, 90, 100)

	j.Steer(1, 0)
	if !vecApprox(j.Dir, core.Vec{X: 1, Y: 0}) {
		t.Errorf("steer right: dir = %v", j.Dir)
	}
	if !vecApprox(j.Handle, core.Vec{X: 190, Y: 700}) {
		t.Errorf("steer right: handle = %v, expected rim", j.Handle)
	}

	j.Steer(-1, -1)
	if math.Abs(j.Dir.Len()-1) > eps || j.Dir.X >= 0 || j.Dir.Y >= 0 {
		t.Errorf("diagonal steer: dir = %v, expected unit up-left", j.Dir)
	}

	j.Steer(0, 0)
	if j.Active || j.Dir != (core.Vec{}) {
		t.Errorf("neutral steer should release, got %v", j.Dir)
	}

	// Pointer ownership wins over keys
	j.HandlePointer(core.PointerEvent{Kind: core.PointerDown, X: 100, Y: 655})
	j.Steer(1, 0)
	if !vecApprox(j.Dir, core.Vec{X: 0, Y: -0.5}) {
		t.Errorf("steer while captured changed dir to %v", j.Dir)
	}
	j.Steer(0, 0)
	if !j.Active {
		t.Error("neutral steer must not release a pointer-held joystick")
	}
}
