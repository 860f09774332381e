package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletMovesAndAges(t *testing.T) {
	b := NewBullet(10, 10, math.Pi/2, DefaultTuning().Bullet)
	b.Update(0.1)
	assert.InDelta(t, 10, b.X, 1e-9)
	assert.InDelta(t, 85, b.Y, 1e-9)
	assert.Equal(t, 10.0, b.PrevY)
	assert.InDelta(t, 0.1, b.Age, 1e-12)
}

func TestBulletExpiry(t *testing.T) {
	arena := NewArena(800, 600)
	tu := DefaultTuning().Bullet

	b := NewBullet(400, 300, 0, tu)
	assert.False(t, b.Expired(arena, tu.Margin))
	b.Age = tu.Lifetime
	assert.True(t, b.Expired(arena, tu.Margin))

	b = NewBullet(-tu.Margin+1, 300, 0, tu)
	assert.False(t, b.Expired(arena, tu.Margin), "inside the margin")
	b.X = -tu.Margin - 1
	assert.True(t, b.Expired(arena, tu.Margin))
}

func TestEnemyPursuesPlayer(t *testing.T) {
	e := Enemy{X: 0, Y: 0, Speed: 100}
	e.Update(0.5, 30, 40)
	assert.InDelta(t, 30, e.X, 1e-9)
	assert.InDelta(t, 40, e.Y, 1e-9)

	// Coincident with the target: no movement, no NaN.
	e = Enemy{X: 5, Y: 5, Speed: 100}
	e.Update(0.5, 5, 5)
	assert.Equal(t, 5.0, e.X)
	assert.Equal(t, 5.0, e.Y)
}

func TestEnemyHit(t *testing.T) {
	e := Enemy{HP: 2}
	assert.False(t, e.Hit(1, 0.1))
	assert.Equal(t, 0.1, e.HitFlash)
	assert.True(t, e.Hit(5, 0.1))
	assert.Equal(t, 0, e.HP)

	e.DecayFlash(0.25)
	assert.Zero(t, e.HitFlash)
}

func TestHealth(t *testing.T) {
	h := NewHealth(100)
	h.Damage(-5)
	assert.Equal(t, 100.0, h.Current)
	h.Damage(130)
	assert.Equal(t, 0.0, h.Current)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Fraction())
	assert.Equal(t, 0.0, (&Health{}).Fraction(), "zero max reads as empty")

	assert.Equal(t, RGB{R: 60, G: 220, B: 60}, HealthBarColor(0.9))
	assert.Equal(t, RGB{R: 220, G: 60, B: 60}, HealthBarColor(0.1))
}

func TestArenaClampCircle(t *testing.T) {
	a := NewArena(200, 100)
	x, y := a.ClampCircle(-10, 500, 15)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 85.0, y)

	x, y = NewArena(20, 100).ClampCircle(3, 50, 15)
	assert.Equal(t, 10.0, x, "too narrow: pinned to the centre")
	assert.Equal(t, 50.0, y)

	assert.Equal(t, NewArena(DefaultArenaWidth, DefaultArenaHeight), NewArena(0, -1))
}

func TestRectHelpers(t *testing.T) {
	a := RectF{X1: 10, Y1: 10}
	g := a.Grow(2)
	assert.Equal(t, RectF{X0: -2, Y0: -2, X1: 12, Y1: 12}, g)
	assert.Equal(t, 14.0, g.W())
	assert.Equal(t, 14.0, g.H())
	assert.True(t, g.ContainsPoint(-2, 12))
	assert.False(t, a.ContainsPoint(-2, 12))
}

func TestOverlapIsStrict(t *testing.T) {
	assert.True(t, overlaps(0, 0, 5, 9.99, 0, 5))
	assert.False(t, overlaps(0, 0, 5, 10, 0, 5))
}

func TestRandRange(t *testing.T) {
	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		v := r.RangeF(-2, 3)
		assert.True(t, v >= -2 && v < 3)
		n := r.Intn(4)
		assert.True(t, n >= 0 && n < 4)
	}
	assert.Equal(t, 7.0, r.RangeF(7, 7))
	assert.Zero(t, r.Intn(0))
}

func TestRGBHelpers(t *testing.T) {
	c := RGB{R: 250, G: 5, B: 100}
	assert.Equal(t, RGB{R: 255, G: 0, B: 110}, c.Add(10, -10, 10))
	assert.Equal(t, RGB{R: 0, G: 0, B: 0}, c.Lerp(RGB{}, 1))
	assert.Equal(t, c, c.Lerp(RGB{}, -1))
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var got []int
	bus.Subscribe(EventWaveStarted, func(e Event) { got = append(got, e.Data) })
	bus.Subscribe(EventWaveStarted, func(e Event) { got = append(got, e.Data*10) })
	bus.Emit(Event{Type: EventWaveStarted, Data: 2})
	bus.Emit(Event{Type: EventShot})
	assert.Equal(t, []int{2, 20}, got)
	assert.Equal(t, "wave_started", EventWaveStarted.String())
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newTestSim(t)
	s.Bullets = append(s.Bullets, bulletAt(s, 1, 1))
	s.Player.Afterimages = append(s.Player.Afterimages, Afterimage{X: 3, Alpha: 0.5})
	snap := s.Snapshot()

	snap.Bullets[0].X = 99
	snap.Player.Afterimages[0].X = 99
	snap.Player.X = 99
	assert.Equal(t, 1.0, s.Bullets[0].X)
	assert.Equal(t, 3.0, s.Player.Afterimages[0].X)
	assert.NotEqual(t, 99.0, s.Player.X)
	assert.Equal(t, s.Session.Wave, snap.Wave)
	assert.Equal(t, StatePlaying, snap.State)
}
