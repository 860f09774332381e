package game

import "math"

const bulletDamage = 1

// resolveCombat runs the two collision passes in a fixed order. Iteration
// follows insertion order and the first overlap wins, so simultaneous
// overlaps always score the same way.
//
// This is a discrete overlap test; a fast bullet can pass through a small
// enemy between ticks at low frame rates.
func (s *Sim) resolveCombat() {
	s.resolveBulletHits()
	s.resolveContacts()
}

func (s *Sim) resolveBulletHits() {
	fx := s.Tuning.Effects
	// struck mirrors s.Enemies; an enemy takes at most one bullet per pass.
	struck := make([]bool, len(s.Enemies))
	for bi := 0; bi < len(s.Bullets); {
		b := &s.Bullets[bi]
		hit := -1
		for ei := range s.Enemies {
			e := &s.Enemies[ei]
			if !struck[ei] && overlaps(b.X, b.Y, b.Radius, e.X, e.Y, e.Radius) {
				hit = ei
				break
			}
		}
		if hit < 0 {
			bi++
			continue
		}

		e := &s.Enemies[hit]
		ex, ey := e.X, e.Y
		angle := b.Angle
		lethal := e.Hit(bulletDamage, s.Tuning.Enemy.HitFlashTime)
		s.Bullets = removeAt(s.Bullets, bi)
		s.Particles.Spawn(BurstEnemyHit, ex, ey, angle)
		if !lethal {
			struck[hit] = true
			s.AddShake(fx.ShakeKill * 0.5)
			s.Cue(CueEnemyHit, CueParams{Gain: 0.6})
			continue
		}

		s.Enemies = removeAt(s.Enemies, hit)
		struck = removeAt(struck, hit)
		pts := s.Session.RegisterKill(s.Tuning.Combat.KillScore, s.Tuning.Combat.ComboResetTime)
		s.AddHitStop(fx.HitStopKill)
		s.AddShake(fx.ShakeKill)
		s.Cue(CueEnemyHit, CueParams{Pitch: comboPitch(s.Session.Combo), Pan: s.pan(ex)})
		s.Events.Emit(Event{Type: EventEnemyKilled, X: ex, Y: ey, Data: pts})
	}
}

func (s *Sim) resolveContacts() {
	p := s.Player
	fx := s.Tuning.Effects
	for ei := 0; ei < len(s.Enemies); {
		e := &s.Enemies[ei]
		if !overlaps(p.X, p.Y, p.Radius, e.X, e.Y, e.Radius) {
			ei++
			continue
		}
		ex, ey := e.X, e.Y

		blocked := p.Dashing() || p.Invulnerable > 0
		if p.TakeDamage(s.Tuning.Combat.ContactDamage, s) {
			s.Particles.Spawn(BurstPlayerDeath, p.X, p.Y, 0)
			s.Session.State = StateGameOver
			s.Cue(CuePlayerDeath, CueParams{})
			s.Events.Emit(Event{Type: EventPlayerDied, X: p.X, Y: p.Y, Data: s.Session.Score})
			s.log.Info("game over", "score", s.Session.Score, "wave", s.Session.Wave)
		}

		s.Particles.Spawn(BurstEnemyContact, ex, ey, 0)
		s.Enemies = removeAt(s.Enemies, ei)
		s.Session.BreakCombo()
		s.Session.AddScore(s.Tuning.Combat.ContactScore)
		s.AddShake(fx.ShakeContact)
		s.AddHitStop(fx.HitStopContact)
		if blocked {
			// TakeDamage already cued the unblocked case.
			s.Cue(CuePlayerHit, CueParams{Gain: 0.5, Pan: s.pan(ex)})
		}
		s.Events.Emit(Event{Type: EventPlayerHit, X: ex, Y: ey, Data: int(p.HP.Current)})
	}
}

// removeAt deletes index i keeping the order of the rest.
func removeAt[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// comboPitch raises the hit cue a semitone per combo step, capped at an octave.
func comboPitch(combo int) float64 {
	steps := combo - 1
	if steps < 0 {
		steps = 0
	}
	if steps > 12 {
		steps = 12
	}
	return math.Pow(2, float64(steps)/12)
}
