package game

// Update damps velocity by a fixed per-tick factor, integrates position and
// ages every particle, dropping the expired ones.
func (ps *ParticleSystem) Update(dt, damping float64) {
	if dt <= 0 {
		return
	}
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.VX *= damping
		p.VY *= damping
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if p.Kind == ParticleSmoke {
			p.Size += 6 * dt
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}
