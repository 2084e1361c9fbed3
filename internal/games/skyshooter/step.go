package skyshooter

import (
	"time"

	"github.com/vovakirdan/skyshooter/internal/config"
	"github.com/vovakirdan/skyshooter/internal/core"
)

// StepStats summarizes what happened during one tick.
type StepStats struct {
	Spawned   int
	Destroyed int
}

// Step advances the world by one tick. scale multiplies every per-frame
// movement (1 for a nominal frame); elapsed is the real time since the
// previous tick and drives the spawn timer.
//
// Order: aircraft, projectiles, targets, collisions, spawn. A target
// spawned this tick first moves on the next one.
func (w *World) Step(scale float64, elapsed time.Duration) StepStats {
	var stats StepStats

	w.moveAircraft(scale)
	w.moveProjectiles(scale)
	w.moveTargets(scale)
	stats.Destroyed = w.ResolveCollisions()

	if t, ok := w.spawner.Advance(elapsed); ok {
		w.Targets = append(w.Targets, t)
		stats.Spawned = 1
	}

	w.ticks++
	return stats
}

// moveAircraft applies the joystick direction and clamps the aircraft to
// the field. Clamping caps the position only; velocity is left as computed.
func (w *World) moveAircraft(scale float64) {
	a := &w.Aircraft
	a.Vel = w.Joystick.Dir.Scale(w.cfg.Aircraft.Speed)
	a.Pos = a.Pos.Add(a.Vel.Scale(scale))
	a.Pos.X = core.ClampF(a.Pos.X, a.HalfW, w.cfg.Field.Width-a.HalfW)
	a.Pos.Y = core.ClampF(a.Pos.Y, a.HalfH, w.cfg.Field.Height-a.HalfH)
}

// moveProjectiles advances projectiles upward and drops those past the
// cull line, including spent ones parked at the sentinel.
func (w *World) moveProjectiles(scale float64) {
	dy := w.cfg.Projectile.Speed * scale
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Pos.Y -= dy
		if p.Pos.Y > w.cfg.Projectile.CullY {
			kept = append(kept, p)
		}
	}
	w.Projectiles = kept
}

// moveTargets advances targets downward and drops dead targets and those
// past the bottom margin.
func (w *World) moveTargets(scale float64) {
	dy := w.cfg.Target.Speed * scale
	limit := w.cfg.Field.Height + w.cfg.Target.BottomMargin
	kept := w.Targets[:0]
	for _, t := range w.Targets {
		t.Pos.Y += dy
		if t.Pos.Y < limit && t.Alive {
			kept = append(kept, t)
		}
	}
	w.Targets = kept
}

// ResolveCollisions tests every (target, projectile) pair, target-major.
// A hit kills the target, scores one point and marks the projectile spent.
// Spent projectiles still count for the rest of the pass and are parked at
// the sentinel line afterwards, so the next tick prunes them.
//
// Under HitPolicyCapped a target stops being tested once it is dead, so it
// scores at most once. Under HitPolicyNaive every overlapping pair scores.
// Returns the number of points scored.
func (w *World) ResolveCollisions() int {
	capped := w.cfg.Collision.Policy != config.HitPolicyNaive
	scored := 0

	for ti := range w.Targets {
		t := &w.Targets[ti]
		box := t.Box()
		for pi := range w.Projectiles {
			if capped && !t.Alive {
				break
			}
			p := &w.Projectiles[pi]
			if !box.ContainsStrict(p.Pos) {
				continue
			}
			t.Alive = false
			p.spent = true
			scored++
		}
	}

	for pi := range w.Projectiles {
		if p := &w.Projectiles[pi]; p.spent {
			p.Pos.Y = w.cfg.Projectile.SentinelY
			p.spent = false
		}
	}

	w.Score += scored
	return scored
}
