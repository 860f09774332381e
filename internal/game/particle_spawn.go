package game

import "math"

// BurstKind names the particle bursts combat and dashing ask for.
type BurstKind int

const (
	BurstEnemyHit BurstKind = iota
	BurstEnemyContact
	BurstPlayerDeath
	BurstDash
	BurstMuzzle
)

// Spawn emits a burst of the given kind at (x, y). angle orients
// directional bursts (dash exhaust, muzzle flash); others ignore it.
func (ps *ParticleSystem) Spawn(kind BurstKind, x, y, angle float64) {
	switch kind {
	case BurstEnemyHit:
		ps.SpawnRing(x, y, 14, 60, 260, 0.25, 0.55, 2.5, Palette.Spark, ParticleSpark)
		ps.SpawnRing(x, y, 6, 20, 90, 0.15, 0.3, 5, Palette.Glow, ParticleGlow)
	case BurstEnemyContact:
		ps.SpawnRing(x, y, 18, 40, 220, 0.3, 0.7, 3, Palette.Blood, ParticleBlood)
		ps.SpawnRing(x, y, 8, 10, 50, 0.4, 0.8, 4, Palette.Smoke, ParticleSmoke)
	case BurstPlayerDeath:
		ps.SpawnRing(x, y, 80, 80, 420, 0.6, 1.4, 3.5, Palette.Player, ParticleSpark)
		ps.SpawnRing(x, y, 30, 30, 160, 0.8, 1.6, 6, Palette.Glow, ParticleGlow)
		ps.SpawnRing(x, y, 24, 10, 70, 1.0, 2.0, 6, Palette.Smoke, ParticleSmoke)
	case BurstDash:
		ps.SpawnCone(x, y, angle, 0.8, 12, 40, 160, 0.15, 0.35, 3, Palette.Dash, ParticleDash)
	case BurstMuzzle:
		ps.SpawnCone(x, y, angle, 0.35, 4, 80, 220, 0.05, 0.12, 2, Palette.Bullet, ParticleGlow)
	}
}

// SpawnRing scatters count particles in every direction.
func (ps *ParticleSystem) SpawnRing(x, y float64, count int, spdMin, spdMax, lifeMin, lifeMax, size float64, col RGB, kind ParticleKind) {
	ps.SpawnCone(x, y, 0, math.Pi, count, spdMin, spdMax, lifeMin, lifeMax, size, col, kind)
}

// SpawnCone scatters count particles within spread radians of angle.
func (ps *ParticleSystem) SpawnCone(x, y, angle, spread float64, count int, spdMin, spdMax, lifeMin, lifeMax, size float64, col RGB, kind ParticleKind) {
	r := ps.rng
	for i := 0; i < count; i++ {
		ang := angle + r.RangeF(-spread, spread)
		spd := r.RangeF(spdMin, spdMax)
		ps.Add(Particle{
			X: x + r.RangeF(-1.5, 1.5), Y: y + r.RangeF(-1.5, 1.5),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    size * r.RangeF(0.7, 1.3),
			MaxLife: r.RangeF(lifeMin, lifeMax),
			Col:     col.Add(r.Intn(29)-14, r.Intn(29)-14, r.Intn(29)-14),
			Kind:    kind,
		})
	}
}
