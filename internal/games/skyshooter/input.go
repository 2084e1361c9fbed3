package skyshooter

import "github.com/vovakirdan/skyshooter/internal/core"

// HandleInput applies one frame of input: pointer events go to the
// joystick (taps outside it fire), steering keys drive the joystick when
// no pointer holds it, and ActionFire fires once. It returns the number
// of projectiles fired.
func (w *World) HandleInput(in core.InputFrame) int {
	fired := 0

	for _, ev := range in.Pointer {
		if w.Joystick.HandlePointer(ev) {
			w.Fire()
			fired++
		}
	}

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	w.Joystick.Steer(dx, dy)

	if in.Has(core.ActionFire) {
		w.Fire()
		fired++
	}

	return fired
}
