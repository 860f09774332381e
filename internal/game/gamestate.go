package game

import "math"

type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Session is the process-wide score/wave/combo state. Restart replaces it,
// keeping only the player's mute and debug preferences.
type Session struct {
	State   GameState
	Score   int
	Elapsed float64

	Wave            int
	EnemiesPerWave  int
	SpawnRate       float64
	SpawnTimer      float64
	SpawnedThisWave int
	BannerTimer     float64

	Combo      int
	ComboTimer float64

	Muted bool
	Debug bool
}

// NewSession starts at wave 1 with its banner running.
func NewSession(t Tuning) Session {
	s := Session{State: StatePlaying}
	s.startWave(1, t.Wave)
	return s
}

// WaveEnemies is the population target for a wave.
func WaveEnemies(wave int, t WaveTuning) int {
	return t.BaseEnemies + wave*t.PerWave
}

// WaveSpawnRate is the delay between spawns for a wave.
func WaveSpawnRate(wave int, t WaveTuning) float64 {
	return math.Max(t.MinSpawnRate, t.BaseSpawnRate-float64(wave)*t.SpawnRateStep)
}

func (s *Session) startWave(wave int, t WaveTuning) {
	s.Wave = wave
	s.EnemiesPerWave = WaveEnemies(wave, t)
	s.SpawnRate = WaveSpawnRate(wave, t)
	s.SpawnedThisWave = 0
	s.BannerTimer = t.BannerTime
}

// RegisterKill bumps the combo, restarts its window and returns the points
// awarded: killScore times the new combo.
func (s *Session) RegisterKill(killScore int, window float64) int {
	s.Combo++
	s.ComboTimer = window
	pts := killScore * s.Combo
	s.AddScore(pts)
	return pts
}

func (s *Session) BreakCombo() {
	s.Combo = 0
	s.ComboTimer = 0
}

// AddScore keeps the score monotonic: negative awards are ignored.
func (s *Session) AddScore(pts int) {
	if pts > 0 {
		s.Score += pts
	}
}

// TickCombo runs the combo window down; an expired window resets the combo.
func (s *Session) TickCombo(dt float64) {
	if s.Combo == 0 {
		return
	}
	s.ComboTimer -= dt
	if s.ComboTimer <= 0 {
		s.BreakCombo()
	}
}
