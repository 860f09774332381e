package game

// Input is the per-tick controller snapshot. Movement axes are in [-1,1];
// Dash and the toggles are edges (true only on the tick they were pressed).
type Input struct {
	MoveX, MoveY float64
	AimX, AimY   float64
	Fire         bool

	Dash    bool
	Pause   bool
	Restart bool
	Mute    bool
	Debug   bool
}

// Clock turns absolute frame timestamps (seconds) into clamped deltas.
type Clock struct {
	last    float64
	started bool
}

// Tick returns the elapsed time since the previous call, clamped to
// [0, MaxDeltaTime]. The first call returns 0.
func (c *Clock) Tick(now float64) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	return clampF(dt, 0, MaxDeltaTime)
}
