package skyshooter

import "github.com/vovakirdan/skyshooter/internal/core"

// MapPointer converts a raw pointer position into the joystick handle
// position and the normalized direction. The handle is clamped to the
// circle of the given radius around origin, so the direction never
// exceeds unit length. A pointer exactly on the origin yields (0,0).
func MapPointer(raw, origin core.Vec, radius float64) (handle, dir core.Vec) {
	if radius <= 0 {
		return origin, core.Vec{}
	}

	offset := raw.Sub(origin)
	dist := offset.Len()
	if dist == 0 {
		return origin, core.Vec{}
	}
	if dist > radius {
		offset = offset.Scale(radius / dist)
	}

	return origin.Add(offset), offset.Scale(1 / radius)
}

// Joystick is the virtual joystick state. The handle follows the owning
// pointer; releasing it returns the handle to the origin.
type Joystick struct {
	Origin core.Vec
	Handle core.Vec
	Dir    core.Vec
	Active bool
	Radius float64

	// Region is the half-size of the square around Origin that captures
	// new pointers.
	Region float64

	owner    int  // pointer ID holding the joystick
	captured bool // a pointer owns the joystick
	keyboard bool // direction comes from steering keys
}

// NewJoystick creates an idle joystick.
func NewJoystick(origin core.Vec, radius, region float64) Joystick {
	return Joystick{
		Origin: origin,
		Handle: origin,
		Radius: radius,
		Region: region,
	}
}

// InRegion reports whether p falls inside the joystick's capture square.
func (j *Joystick) InRegion(p core.Vec) bool {
	return core.Box{Center: j.Origin, HalfW: j.Region, HalfH: j.Region}.Contains(p)
}

// Move points the handle at raw.
func (j *Joystick) Move(raw core.Vec) {
	j.Active = true
	j.Handle, j.Dir = MapPointer(raw, j.Origin, j.Radius)
}

// Release returns the joystick to its neutral state.
func (j *Joystick) Release() {
	j.Active = false
	j.captured = false
	j.keyboard = false
	j.Handle = j.Origin
	j.Dir = core.Vec{}
}

// HandlePointer routes one pointer event. A press inside the region
// captures the joystick for that pointer, and the capturing pointer keeps
// steering until it is lifted even if it leaves the region. It returns true
// when the event is a tap outside the region.
func (j *Joystick) HandlePointer(ev core.PointerEvent) (tap bool) {
	p := core.Vec{X: ev.X, Y: ev.Y}

	switch ev.Kind {
	case core.PointerDown:
		if j.captured {
			if ev.ID == j.owner {
				j.Move(p)
				return false
			}
			return !j.InRegion(p)
		}
		if !j.InRegion(p) {
			return true
		}
		j.captured = true
		j.keyboard = false
		j.owner = ev.ID
		j.Move(p)

	case core.PointerMove:
		if j.captured && ev.ID == j.owner {
			j.Move(p)
		}

	case core.PointerUp:
		if j.captured && ev.ID == j.owner {
			j.Release()
		}
	}

	return false
}

// Steer drives the joystick from discrete direction keys by placing a
// virtual pointer on the rim. (0,0) releases a keyboard-held joystick.
// Steering is ignored while a pointer owns the joystick.
func (j *Joystick) Steer(dx, dy float64) {
	if j.captured {
		return
	}
	v := core.Vec{X: dx, Y: dy}
	n := v.Len()
	if n == 0 {
		if j.keyboard {
			j.Release()
		}
		return
	}
	j.keyboard = true
	j.Move(j.Origin.Add(v.Scale(j.Radius / n)))
}
