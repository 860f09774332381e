package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveFormulas(t *testing.T) {
	w := DefaultTuning().Wave
	tests := []struct {
		wave    int
		enemies int
		rate    float64
	}{
		{1, 7, 1.9},
		{2, 9, 1.8},
		{10, 25, 1.0},
		{15, 35, 0.5},
		{40, 85, 0.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.enemies, WaveEnemies(tt.wave, w), "wave %d", tt.wave)
		assert.InDelta(t, tt.rate, WaveSpawnRate(tt.wave, w), 1e-9, "wave %d", tt.wave)
	}
}

func TestNewSessionStartsWaveOne(t *testing.T) {
	s := NewSession(DefaultTuning())
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, 7, s.EnemiesPerWave)
	assert.InDelta(t, 1.9, s.SpawnRate, 1e-9)
	assert.Equal(t, 2.0, s.BannerTimer)
	assert.Equal(t, 0, s.SpawnedThisWave)
}

func TestBannerSuppressesSpawning(t *testing.T) {
	tu := DefaultTuning()
	d := NewSpawnDirector(7, tu)
	s := NewSession(tu)
	arena := NewArena(800, 600)

	enemies, adv := d.Update(1.0, &s, nil, arena)
	assert.Empty(t, enemies)
	assert.False(t, adv)
	assert.Equal(t, 1.0, s.BannerTimer)

	enemies, adv = d.Update(1.0, &s, enemies, arena)
	require.Len(t, enemies, 1)
	assert.False(t, adv)
	assert.Equal(t, 1, s.SpawnedThisWave)
	assert.InDelta(t, s.SpawnRate, s.SpawnTimer, 1e-9)

	// Next spawn waits for the rate.
	enemies, _ = d.Update(1.0, &s, enemies, arena)
	assert.Len(t, enemies, 1)
	enemies, _ = d.Update(1.0, &s, enemies, arena)
	assert.Len(t, enemies, 2)
}

func TestWaveQuotaThenAdvance(t *testing.T) {
	tu := DefaultTuning()
	d := NewSpawnDirector(7, tu)
	s := NewSession(tu)
	s.BannerTimer = 0
	arena := NewArena(800, 600)

	var enemies []Enemy
	for i := 0; i < 100; i++ {
		enemies, _ = d.Update(s.SpawnRate, &s, enemies, arena)
	}
	require.Len(t, enemies, s.EnemiesPerWave)
	assert.Equal(t, s.EnemiesPerWave, s.SpawnedThisWave)

	// Killing part of the wave does not top it back up.
	enemies = enemies[:2]
	enemies, adv := d.Update(s.SpawnRate, &s, enemies, arena)
	assert.Len(t, enemies, 2)
	assert.False(t, adv)

	enemies, adv = d.Update(s.SpawnRate, &s, nil, arena)
	assert.Empty(t, enemies)
	require.True(t, adv)
	assert.Equal(t, 2, s.Wave)
	assert.Equal(t, 9, s.EnemiesPerWave)
	assert.InDelta(t, 1.8, s.SpawnRate, 1e-9)
	assert.Equal(t, tu.Wave.BannerTime, s.BannerTimer)
	assert.Equal(t, 0, s.SpawnedThisWave)
}

func TestEmptyArenaWithQuotaLeftKeepsWave(t *testing.T) {
	tu := DefaultTuning()
	d := NewSpawnDirector(7, tu)
	s := NewSession(tu)
	s.BannerTimer = 0
	s.SpawnTimer = 0
	s.SpawnedThisWave = s.EnemiesPerWave - 1
	arena := NewArena(800, 600)

	enemies, adv := d.Update(tick, &s, nil, arena)
	assert.False(t, adv, "one enemy still owed")
	assert.Len(t, enemies, 1)
	assert.Equal(t, 1, s.Wave)

	enemies, adv = d.Update(s.SpawnRate, &s, enemies[:0], arena)
	assert.True(t, adv)
	assert.Empty(t, enemies)
	assert.Equal(t, 2, s.Wave)
}

func TestSpawnedEnemiesStartOffscreen(t *testing.T) {
	tu := DefaultTuning()
	r := NewRand(99)
	arena := NewArena(800, 600)
	m := tu.Enemy.SpawnMargin
	edges := map[string]bool{}
	for i := 0; i < 500; i++ {
		e := SpawnEnemy(r, arena, tu.Enemy)
		assert.GreaterOrEqual(t, e.Radius, tu.Enemy.RadiusMin)
		assert.LessOrEqual(t, e.Radius, tu.Enemy.RadiusMax)
		assert.GreaterOrEqual(t, e.Speed, tu.Enemy.SpeedMin)
		assert.LessOrEqual(t, e.Speed, tu.Enemy.SpeedMax)
		assert.Equal(t, tu.Enemy.HP, e.HP)
		assert.False(t, arena.ContainsPoint(e.X, e.Y), "spawned inside at %v,%v", e.X, e.Y)
		switch {
		case e.Y == arena.Y0-m:
			edges["top"] = true
		case e.Y == arena.Y1+m:
			edges["bottom"] = true
		case e.X == arena.X0-m:
			edges["left"] = true
		case e.X == arena.X1+m:
			edges["right"] = true
		}
	}
	assert.Len(t, edges, 4)
}

func TestSpawnDirectorIsDeterministic(t *testing.T) {
	tu := DefaultTuning()
	a, b := NewSpawnDirector(5, tu), NewSpawnDirector(5, tu)
	sa, sb := NewSession(tu), NewSession(tu)
	arena := NewArena(800, 600)
	var ea, eb []Enemy
	for i := 0; i < 20; i++ {
		ea, _ = a.Update(0.5, &sa, ea, arena)
		eb, _ = b.Update(0.5, &sb, eb, arena)
	}
	assert.Equal(t, ea, eb)
}
