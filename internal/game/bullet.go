package game

import "math"

// Bullet flies in a straight line until it ages out or leaves the arena.
type Bullet struct {
	X, Y         float64
	PrevX, PrevY float64 // last tick's position, for the trail
	Angle        float64
	Speed        float64
	Radius       float64
	Lifetime     float64
	Age          float64
}

func NewBullet(x, y, angle float64, t BulletTuning) Bullet {
	return Bullet{
		X: x, Y: y,
		PrevX: x, PrevY: y,
		Angle:    angle,
		Speed:    t.Speed,
		Radius:   t.Radius,
		Lifetime: t.Lifetime,
	}
}

func (b *Bullet) Update(dt float64) {
	b.PrevX, b.PrevY = b.X, b.Y
	b.X += math.Cos(b.Angle) * b.Speed * dt
	b.Y += math.Sin(b.Angle) * b.Speed * dt
	b.Age += dt
}

// Expired reports whether the bullet should leave the active set.
func (b *Bullet) Expired(arena RectF, margin float64) bool {
	return b.Age >= b.Lifetime || !arena.Grow(margin).ContainsPoint(b.X, b.Y)
}
