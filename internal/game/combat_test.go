package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placePlayer(s *Sim, x, y float64) {
	s.Player.X, s.Player.Y = x, y
}

func bulletAt(s *Sim, x, y float64) Bullet {
	return NewBullet(x, y, 0, s.Tuning.Bullet)
}

func enemyAt(x, y float64) Enemy {
	return Enemy{X: x, Y: y, Radius: 15, Speed: 80, HP: 1}
}

func TestBulletKillsEnemy(t *testing.T) {
	s, cues := newTestSim(t)
	placePlayer(s, 100, 100)
	s.Enemies = append(s.Enemies, enemyAt(600, 300))
	s.Bullets = append(s.Bullets, bulletAt(s, 605, 300))
	kills := countEvents(s, EventEnemyKilled)
	before := len(s.Particles.P)

	s.resolveCombat()

	assert.Empty(t, s.Bullets)
	assert.Empty(t, s.Enemies)
	assert.Equal(t, 1, s.Session.Combo)
	assert.Equal(t, 10, s.Session.Score)
	assert.Equal(t, s.Tuning.Combat.ComboResetTime, s.Session.ComboTimer)
	assert.Equal(t, s.Tuning.Effects.HitStopKill, s.Effects.HitStop)
	assert.Equal(t, 1, cues.count(CueEnemyHit))
	assert.Equal(t, 1, *kills)
	assert.Greater(t, len(s.Particles.P), before)
}

func TestComboMultipliesScore(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 100, 100)
	for i := 0; i < 3; i++ {
		s.Enemies = append(s.Enemies, enemyAt(600, 300))
		s.Bullets = append(s.Bullets, bulletAt(s, 600, 300))
		s.resolveCombat()
	}
	assert.Equal(t, 3, s.Session.Combo)
	assert.Equal(t, 10+20+30, s.Session.Score)
}

func TestBulletHitsFirstEnemyInOrder(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 100, 100)
	far := enemyAt(615, 300)
	far.Speed = 1
	near := enemyAt(601, 300)
	near.Speed = 2
	s.Enemies = append(s.Enemies, far, near)
	s.Bullets = append(s.Bullets, bulletAt(s, 600, 300))

	s.resolveCombat()

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 2.0, s.Enemies[0].Speed, "first in insertion order wins, not the nearest")
	assert.Empty(t, s.Bullets)
}

func TestEnemyConsumesOneBullet(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 100, 100)
	s.Enemies = append(s.Enemies, enemyAt(600, 300))
	s.Bullets = append(s.Bullets, bulletAt(s, 600, 300), bulletAt(s, 602, 300))

	s.resolveCombat()

	assert.Empty(t, s.Enemies)
	require.Len(t, s.Bullets, 1)
	assert.Equal(t, 602.0, s.Bullets[0].X)
	assert.Equal(t, 1, s.Session.Combo)
}

func TestNonLethalHitFlashes(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 100, 100)
	tough := enemyAt(600, 300)
	tough.HP = 2
	s.Enemies = append(s.Enemies, tough)
	s.Bullets = append(s.Bullets, bulletAt(s, 600, 300))

	s.resolveCombat()

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 1, s.Enemies[0].HP)
	assert.Equal(t, s.Tuning.Enemy.HitFlashTime, s.Enemies[0].HitFlash)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 0, s.Session.Combo)
	assert.Equal(t, 0, s.Session.Score)

	// Two bullets on the same survivor: only one lands this pass.
	s.Enemies[0].HP = 3
	s.Bullets = append(s.Bullets, bulletAt(s, 600, 300), bulletAt(s, 600, 300))

	s.resolveCombat()

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, 2, s.Enemies[0].HP)
	assert.Len(t, s.Bullets, 1)

	s.resolveCombat()
	assert.Equal(t, 1, s.Enemies[0].HP)
	assert.Empty(t, s.Bullets)
}

func TestMissLeavesBothAlone(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 100, 100)
	s.Enemies = append(s.Enemies, enemyAt(600, 300))
	// Touching exactly at the radius sum is not an overlap.
	s.Bullets = append(s.Bullets, bulletAt(s, 600+15+s.Tuning.Bullet.Radius, 300))

	s.resolveCombat()

	assert.Len(t, s.Enemies, 1)
	assert.Len(t, s.Bullets, 1)
}

func TestContactDamagesPlayer(t *testing.T) {
	s, cues := newTestSim(t)
	placePlayer(s, 300, 300)
	s.Session.Combo, s.Session.ComboTimer = 3, 1
	s.Session.Score = 50
	s.Enemies = append(s.Enemies, enemyAt(310, 300))
	hits := countEvents(s, EventPlayerHit)

	s.resolveCombat()

	assert.Empty(t, s.Enemies)
	assert.Equal(t, 80.0, s.Player.HP.Current)
	assert.Equal(t, s.Player.InvulnerableTime, s.Player.Invulnerable)
	assert.Equal(t, 0, s.Session.Combo)
	assert.Equal(t, 55, s.Session.Score)
	assert.Equal(t, s.Tuning.Effects.HitStopContact, s.Effects.HitStop)
	assert.Equal(t, 1, cues.count(CuePlayerHit))
	assert.Equal(t, 1, *hits)
	assert.Equal(t, StatePlaying, s.Session.State)
}

func TestContactWhileInvulnerable(t *testing.T) {
	s, cues := newTestSim(t)
	placePlayer(s, 300, 300)
	s.Player.Invulnerable = 0.5
	s.Session.Combo = 2
	s.Enemies = append(s.Enemies, enemyAt(300, 300), enemyAt(305, 300))

	s.resolveCombat()

	assert.Empty(t, s.Enemies, "blocked contacts still destroy the enemy")
	assert.Equal(t, 100.0, s.Player.HP.Current)
	assert.Equal(t, 0, s.Session.Combo)
	assert.Equal(t, 2*s.Tuning.Combat.ContactScore, s.Session.Score)
	assert.Equal(t, 2, cues.count(CuePlayerHit))
}

func TestLethalContactEndsRun(t *testing.T) {
	s, cues := newTestSim(t)
	placePlayer(s, 300, 300)
	s.Player.HP.Current = 20
	s.Enemies = append(s.Enemies, enemyAt(300, 300))
	died := countEvents(s, EventPlayerDied)

	s.resolveCombat()

	assert.Equal(t, StateGameOver, s.Session.State)
	assert.Equal(t, 0.0, s.Player.HP.Current)
	assert.Equal(t, 1, cues.count(CuePlayerDeath))
	assert.Equal(t, 1, *died)
	assert.Empty(t, s.Enemies)
}

func TestBulletPassRunsBeforeContacts(t *testing.T) {
	s, _ := newTestSim(t)
	placePlayer(s, 300, 300)
	s.Enemies = append(s.Enemies, enemyAt(310, 300))
	s.Bullets = append(s.Bullets, bulletAt(s, 312, 300))

	s.resolveCombat()

	assert.Equal(t, 100.0, s.Player.HP.Current, "the enemy died before it could touch")
	assert.Equal(t, 1, s.Session.Combo)
}

func TestComboPitch(t *testing.T) {
	assert.Equal(t, 1.0, comboPitch(0))
	assert.Equal(t, 1.0, comboPitch(1))
	assert.InDelta(t, 2.0, comboPitch(13), 1e-12)
	assert.InDelta(t, 2.0, comboPitch(50), 1e-12)
}

func TestRemoveAtKeepsOrder(t *testing.T) {
	got := removeAt([]int{1, 2, 3, 4}, 1)
	assert.Equal(t, []int{1, 3, 4}, got)
}
