package game

import "slices"

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the simulation, so it may be handed to another goroutine.
type Snapshot struct {
	Arena RectF

	Player    Player
	Bullets   []Bullet
	Enemies   []Enemy
	Particles []Particle

	ShakeX, ShakeY float64
	HitStop        float64

	State       GameState
	Score       int
	Wave        int
	Combo       int
	ComboTimer  float64
	BannerTimer float64
	Elapsed     float64
	Muted       bool
	Debug       bool
}

// Snapshot copies the current state for the render collaborator.
func (s *Sim) Snapshot() Snapshot {
	p := *s.Player
	p.Afterimages = slices.Clone(s.Player.Afterimages)
	return Snapshot{
		Arena:       s.Arena,
		Player:      p,
		Bullets:     slices.Clone(s.Bullets),
		Enemies:     slices.Clone(s.Enemies),
		Particles:   slices.Clone(s.Particles.P),
		ShakeX:      s.Effects.ShakeX,
		ShakeY:      s.Effects.ShakeY,
		HitStop:     s.Effects.HitStop,
		State:       s.Session.State,
		Score:       s.Session.Score,
		Wave:        s.Session.Wave,
		Combo:       s.Session.Combo,
		ComboTimer:  s.Session.ComboTimer,
		BannerTimer: s.Session.BannerTimer,
		Elapsed:     s.Session.Elapsed,
		Muted:       s.Session.Muted,
		Debug:       s.Session.Debug,
	}
}
