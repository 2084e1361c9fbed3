package core

import (
	"testing"
	"time"
)

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.AddPointer(PointerEvent{ID: 0, Kind: PointerDown, X: 10, Y: 20})
	f.Elapsed = 20 * time.Millisecond

	if len(f.Pointer) != 1 || f.Pointer[0].Y != 20 {
		t.Errorf("pointer events = %+v", f.Pointer)
	}

	f.Clear()
	if f.Has(ActionPause) || len(f.Pointer) != 0 || f.Elapsed != 0 {
		t.Errorf("Clear should reset the frame, got %+v", f)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionFire:  "Fire",
		ActionPause: "Pause",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
	if PointerUp.String() != "Up" {
		t.Errorf("PointerUp.String() = %q", PointerUp.String())
	}
}

func TestFrameInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).FrameInterval(); got != 20*time.Millisecond {
		t.Errorf("FrameInterval() = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).FrameInterval(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60fps, got %v", got)
	}
}
