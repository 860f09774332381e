package game

import "math"

// Feedback is how entities reach the shared juice state without holding a
// reference to the simulation.
type Feedback interface {
	AddShake(intensity float64)
	AddHitStop(d float64)
	Cue(name Cue, params CueParams)
	Burst(kind BurstKind, x, y, angle float64)
}

// DashState is the Normal/Dashing machine. Direction is fixed on entry.
type DashState struct {
	Active           bool
	Timer            float64
	Duration         float64
	Cooldown         float64
	CooldownDuration float64
	SpeedMultiplier  float64
	DirX, DirY       float64
}

// Afterimage is a fading ghost left behind while dashing.
type Afterimage struct {
	X, Y  float64
	Angle float64
	Alpha float64
	Age   float64
}

const afterimageAlpha = 0.6

type Player struct {
	X, Y   float64
	Angle  float64 // facing, towards the aim point
	Radius float64
	Speed  float64
	HP     Health

	Invulnerable     float64
	InvulnerableTime float64

	Dash        DashState
	Recoil      float64
	Afterimages []Afterimage

	FireCooldown float64
	FireRate     float64

	t Tuning
}

func NewPlayer(x, y float64, t Tuning) *Player {
	return &Player{
		X:                x,
		Y:                y,
		Radius:           t.Player.Radius,
		Speed:            t.Player.Speed,
		HP:               NewHealth(t.Player.MaxHP),
		InvulnerableTime: t.Player.InvulnerableTime,
		Dash: DashState{
			Duration:         t.Dash.Duration,
			CooldownDuration: t.Dash.Cooldown,
			SpeedMultiplier:  t.Dash.SpeedMultiplier,
		},
		Afterimages:  make([]Afterimage, 0, MaxAfterimages),
		FireCooldown: t.Player.FireRate,
		FireRate:     t.Player.FireRate,
		t:            t,
	}
}

// Update advances one gameplay tick: aim, timers, dash machine, movement.
func (p *Player) Update(dt float64, in Input, arena RectF, fb Feedback) {
	if dx, dy := in.AimX-p.X, in.AimY-p.Y; dx != 0 || dy != 0 {
		p.Angle = math.Atan2(dy, dx)
	}

	p.Invulnerable = decay(p.Invulnerable, dt)
	p.Dash.Cooldown = decay(p.Dash.Cooldown, dt)

	if in.Dash && !p.Dash.Active && p.Dash.Cooldown <= 0 {
		p.startDash(in, fb)
	}

	if p.Dash.Active {
		step := p.Speed * p.Dash.SpeedMultiplier * dt
		p.X += p.Dash.DirX * step
		p.Y += p.Dash.DirY * step
		p.pushAfterimage()
		p.Dash.Timer -= dt
		if p.Dash.Timer <= 0 {
			p.Dash.Timer = 0
			p.Dash.Active = false
		}
	} else if mx, my, ok := normalize(in.MoveX, in.MoveY); ok {
		p.X += mx * p.Speed * dt
		p.Y += my * p.Speed * dt
	}

	p.X, p.Y = arena.ClampCircle(p.X, p.Y, p.Radius)
}

func (p *Player) startDash(in Input, fb Feedback) {
	dx, dy, ok := normalize(in.MoveX, in.MoveY)
	if !ok {
		dx, dy = math.Cos(p.Angle), math.Sin(p.Angle)
	}
	p.Dash.Active = true
	p.Dash.DirX, p.Dash.DirY = dx, dy
	p.Dash.Timer = p.Dash.Duration
	p.Dash.Cooldown = p.Dash.CooldownDuration
	p.Invulnerable = p.Dash.Duration

	fb.Burst(BurstDash, p.X, p.Y, math.Atan2(-dy, -dx))
	fb.AddShake(p.t.Effects.ShakeDash)
	fb.Cue(CueDash, CueParams{})
}

func (p *Player) pushAfterimage() {
	if len(p.Afterimages) >= MaxAfterimages {
		copy(p.Afterimages, p.Afterimages[1:])
		p.Afterimages = p.Afterimages[:MaxAfterimages-1]
	}
	p.Afterimages = append(p.Afterimages, Afterimage{X: p.X, Y: p.Y, Angle: p.Angle, Alpha: afterimageAlpha})
}

// Dashing reports the Dashing state.
func (p *Player) Dashing() bool { return p.Dash.Active }

// TakeDamage applies a hit and reports whether it was lethal. A dash blocks
// damage regardless of the invulnerability timer.
func (p *Player) TakeDamage(amount float64, fb Feedback) bool {
	if p.Dash.Active || p.Invulnerable > 0 {
		return false
	}
	p.HP.Damage(amount)
	p.Invulnerable = p.InvulnerableTime
	fb.AddShake(p.t.Effects.ShakeDamage)
	fb.AddHitStop(p.t.Effects.HitStopDamage)
	fb.Cue(CuePlayerHit, CueParams{})
	return p.HP.IsDead()
}

// Fire counts the weapon cooldown down and reports whether a shot leaves
// the muzzle this tick.
func (p *Player) Fire(dt float64, held bool) bool {
	p.FireCooldown = decay(p.FireCooldown, dt)
	if !held || p.FireCooldown > fireEpsilon {
		return false
	}
	p.FireCooldown = p.FireRate
	p.Recoil = p.t.Player.RecoilKick
	return true
}

// Muzzle is where bullets spawn: the rim of the player along the facing.
func (p *Player) Muzzle() (float64, float64) {
	return p.X + math.Cos(p.Angle)*p.Radius, p.Y + math.Sin(p.Angle)*p.Radius
}

// DecayCosmetics fades recoil and afterimages. Runs during hit-stop and pause.
func (p *Player) DecayCosmetics(dt float64) {
	p.Recoil = approach(p.Recoil, 0, p.t.Player.RecoilRecover*dt)

	kept := p.Afterimages[:0]
	for _, a := range p.Afterimages {
		a.Age += dt
		a.Alpha -= p.t.Player.AfterimageFade * dt
		if a.Alpha > 0 {
			kept = append(kept, a)
		}
	}
	p.Afterimages = kept
}
