package skyshooter

import "github.com/vovakirdan/skyshooter/internal/core"

// Fire launches one projectile from the aircraft's nose and returns it.
func (w *World) Fire() Projectile {
	p := Projectile{
		Pos: core.Vec{
			X: w.Aircraft.Pos.X,
			Y: w.Aircraft.Pos.Y - w.cfg.Projectile.Offset,
		},
		Radius: w.cfg.Projectile.Radius,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// FireLatch turns a level-triggered fire button into discrete shots:
// Press succeeds once, then stays disarmed until Release.
// The zero value is armed.
type FireLatch struct {
	disarmed bool
}

// Press reports whether this press should fire, and disarms the latch.
func (l *FireLatch) Press() bool {
	if l.disarmed {
		return false
	}
	l.disarmed = true
	return true
}

// Release re-arms the latch.
func (l *FireLatch) Release() {
	l.disarmed = false
}

// Armed reports whether the next Press will fire.
func (l *FireLatch) Armed() bool {
	return !l.disarmed
}
