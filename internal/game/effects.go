package game

import "math"

// Effects holds the process-wide feedback state: screen shake and hit-stop.
type Effects struct {
	ShakeX, ShakeY float64 // current offset in arena pixels
	HitStop        float64 // remaining freeze time
}

// AddShake nudges the offset by a random delta bounded by intensity.
func (e *Effects) AddShake(r *Rand, intensity float64) {
	if intensity <= 0 {
		return
	}
	e.ShakeX += r.RangeF(-intensity, intensity)
	e.ShakeY += r.RangeF(-intensity, intensity)
}

// DecayShake shrinks the offset by a per-tick factor. Runs every tick,
// frozen or not.
func (e *Effects) DecayShake(factor float64) {
	e.ShakeX *= factor
	e.ShakeY *= factor
	if math.Abs(e.ShakeX) < 0.01 {
		e.ShakeX = 0
	}
	if math.Abs(e.ShakeY) < 0.01 {
		e.ShakeY = 0
	}
}

// AddHitStop extends the freeze to at least d seconds.
func (e *Effects) AddHitStop(d float64) {
	if d > e.HitStop {
		e.HitStop = d
	}
}

// TickHitStop consumes dt of freeze time and reports whether this tick is
// frozen. A tick that starts with freeze time left is frozen even when it
// uses the last of it.
func (e *Effects) TickHitStop(dt float64) bool {
	if e.HitStop <= 0 {
		return false
	}
	e.HitStop = decay(e.HitStop, dt)
	return true
}

func (e *Effects) Reset() {
	*e = Effects{}
}
