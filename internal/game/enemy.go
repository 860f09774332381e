package game

// Enemy chases the player at a fixed speed.
type Enemy struct {
	X, Y     float64
	Radius   float64
	Speed    float64
	HP       int
	HitFlash float64
}

// Update steps straight towards (px, py). Coincident positions don't move.
func (e *Enemy) Update(dt, px, py float64) {
	dx, dy, ok := normalize(px-e.X, py-e.Y)
	if !ok {
		return
	}
	e.X += dx * e.Speed * dt
	e.Y += dy * e.Speed * dt
}

// Hit applies damage, starts the flash and reports whether it was lethal.
func (e *Enemy) Hit(damage int, flash float64) bool {
	e.HitFlash = flash
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}
	return e.HP == 0
}

// DecayFlash runs every tick, including hit-stop.
func (e *Enemy) DecayFlash(dt float64) {
	e.HitFlash = decay(e.HitFlash, dt)
}

// Edge identifies an arena side.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnEnemy places a new enemy just outside a uniformly chosen edge.
func SpawnEnemy(r *Rand, arena RectF, t EnemyTuning) Enemy {
	e := Enemy{
		Radius: r.RangeF(t.RadiusMin, t.RadiusMax),
		Speed:  r.RangeF(t.SpeedMin, t.SpeedMax),
		HP:     t.HP,
	}
	m := t.SpawnMargin
	switch Edge(r.Intn(4)) {
	case EdgeTop:
		e.X, e.Y = r.RangeF(arena.X0, arena.X1), arena.Y0-m
	case EdgeRight:
		e.X, e.Y = arena.X1+m, r.RangeF(arena.Y0, arena.Y1)
	case EdgeBottom:
		e.X, e.Y = r.RangeF(arena.X0, arena.X1), arena.Y1+m
	case EdgeLeft:
		e.X, e.Y = arena.X0-m, r.RangeF(arena.Y0, arena.Y1)
	}
	return e
}
