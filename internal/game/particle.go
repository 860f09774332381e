package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleGlow
	ParticleSmoke
	ParticleBlood
	ParticleDash
)

// Particle is purely cosmetic; dropping one never changes the game.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// Alpha fades linearly over the particle's life.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampF(1-p.Life/p.MaxLife, 0, 1)
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}
