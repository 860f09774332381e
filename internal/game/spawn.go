package game

// SpawnDirector feeds enemies into the arena and advances waves.
type SpawnDirector struct {
	rng   *Rand
	wave  WaveTuning
	enemy EnemyTuning
}

func NewSpawnDirector(seed uint64, t Tuning) SpawnDirector {
	return SpawnDirector{rng: NewRand(seed), wave: t.Wave, enemy: t.Enemy}
}

// Retune swaps the parameters used for future spawns and waves.
func (d *SpawnDirector) Retune(t Tuning) {
	d.wave = t.Wave
	d.enemy = t.Enemy
}

// Update runs one gameplay tick. It returns the (possibly grown) enemy
// slice and whether a new wave started.
//
// The banner suppresses both spawning and advancing. Advancing requires the
// wave quota to be spent (SpawnedThisWave >= EnemiesPerWave); an empty arena
// alone never ends a wave.
func (d *SpawnDirector) Update(dt float64, s *Session, enemies []Enemy, arena RectF) ([]Enemy, bool) {
	s.SpawnTimer = decay(s.SpawnTimer, dt)
	s.BannerTimer = decay(s.BannerTimer, dt)
	if s.BannerTimer > 0 {
		return enemies, false
	}

	if s.SpawnTimer <= 0 && len(enemies) < s.EnemiesPerWave && s.SpawnedThisWave < s.EnemiesPerWave {
		enemies = append(enemies, SpawnEnemy(d.rng, arena, d.enemy))
		s.SpawnedThisWave++
		s.SpawnTimer = s.SpawnRate
		return enemies, false
	}

	if len(enemies) == 0 && s.SpawnTimer <= 0 && s.SpawnedThisWave >= s.EnemiesPerWave {
		s.startWave(s.Wave+1, d.wave)
		return enemies, true
	}
	return enemies, false
}
