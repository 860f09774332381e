package game

import (
	"io"
	"log/slog"
	"math"
)

// Sim owns every entity and all process-wide state. Step is the only
// mutator; nothing else may touch the collections while a tick runs.
type Sim struct {
	Tuning Tuning
	Arena  RectF

	Player    *Player
	Bullets   []Bullet
	Enemies   []Enemy
	Particles *ParticleSystem

	Session Session
	Effects Effects
	Events  *EventBus

	cues     CuePlayer
	log      *slog.Logger
	seed     uint64
	restarts uint64
	rng      *Rand // shake jitter
	spawner  SpawnDirector
}

type Option func(*Sim)

// WithCues routes audio cues to c.
func WithCues(c CuePlayer) Option {
	return func(s *Sim) {
		if c != nil {
			s.cues = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Sim) {
		if l != nil {
			s.log = l
		}
	}
}

// WithArena sets the initial viewport size.
func WithArena(w, h float64) Option {
	return func(s *Sim) { s.Arena = NewArena(w, h) }
}

func NewSim(t Tuning, seed uint64, opts ...Option) *Sim {
	s := &Sim{
		Tuning: t,
		Arena:  NewArena(DefaultArenaWidth, DefaultArenaHeight),
		Events: NewEventBus(),
		cues:   NopCues{},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		seed:   seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset rebuilds every entity and counter. Each run gets fresh sub-seeds so
// restarts don't replay the previous run.
func (s *Sim) reset() {
	base := splitmix64(s.seed ^ s.restarts*0x9E3779B185EBCA87)
	muted, debug := s.Session.Muted, s.Session.Debug

	cx, cy := (s.Arena.X0+s.Arena.X1)*0.5, (s.Arena.Y0+s.Arena.Y1)*0.5
	s.Player = NewPlayer(cx, cy, s.Tuning)
	s.Player.Angle = -math.Pi / 2 // face up
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
	if s.Particles == nil {
		s.Particles = NewParticleSystem(MaxParticles, base^0xBEAD)
	} else {
		s.Particles.Clear()
		s.Particles.rng = NewRand(base ^ 0xBEAD)
	}
	s.Session = NewSession(s.Tuning)
	s.Session.Muted, s.Session.Debug = muted, debug
	s.Effects.Reset()
	s.rng = NewRand(base ^ 0x5AE4E)
	s.spawner = NewSpawnDirector(base^0xE4E31E5, s.Tuning)
}

// Restart discards the run and starts again at wave 1.
func (s *Sim) Restart() {
	s.restarts++
	s.reset()
	s.log.Info("restart", "run", s.restarts)
	s.Events.Emit(Event{Type: EventRestart, Data: int(s.restarts)})
	s.announceWave()
}

// SetArena resizes the play field; the player is pulled back inside.
func (s *Sim) SetArena(w, h float64) {
	a := NewArena(w, h)
	if a == s.Arena {
		return
	}
	s.Arena = a
	s.Player.X, s.Player.Y = a.ClampCircle(s.Player.X, s.Player.Y, s.Player.Radius)
}

// SetTuning swaps gameplay constants. Spawns and tick-level constants pick
// the change up immediately; the player picks it up on restart.
func (s *Sim) SetTuning(t Tuning) {
	s.Tuning = t
	s.spawner.Retune(t)
	s.log.Info("tuning applied")
}

// Step advances the simulation by dt seconds of frame time.
func (s *Sim) Step(dt float64, in Input) {
	dt = clampF(dt, 0, MaxDeltaTime)
	s.applyToggles(in)

	s.decayCosmetics(dt)

	switch s.Session.State {
	case StatePaused:
		return
	case StateGameOver:
		s.Particles.Update(dt, s.Tuning.Effects.ParticleDamping)
		return
	}
	if s.Effects.TickHitStop(dt) {
		return
	}
	s.Session.Elapsed += dt

	s.Player.Update(dt, in, s.Arena, s)
	if s.Player.Fire(dt, in.Fire) {
		s.fire()
	}

	var advanced bool
	s.Enemies, advanced = s.spawner.Update(dt, &s.Session, s.Enemies, s.Arena)
	if advanced {
		s.announceWave()
	}

	s.updateBullets(dt)
	for i := range s.Enemies {
		s.Enemies[i].Update(dt, s.Player.X, s.Player.Y)
	}
	s.Particles.Update(dt, s.Tuning.Effects.ParticleDamping)

	s.resolveCombat()

	if s.Session.State == StatePlaying {
		s.Session.TickCombo(dt)
	}
}

func (s *Sim) applyToggles(in Input) {
	if in.Restart {
		s.Restart()
	}
	if in.Mute {
		s.Session.Muted = !s.Session.Muted
	}
	if in.Debug {
		s.Session.Debug = !s.Session.Debug
	}
	if in.Pause {
		switch s.Session.State {
		case StatePlaying:
			s.Session.State = StatePaused
		case StatePaused:
			s.Session.State = StatePlaying
		}
	}
}

// decayCosmetics keeps feedback alive while gameplay is frozen.
func (s *Sim) decayCosmetics(dt float64) {
	s.Effects.DecayShake(s.Tuning.Effects.ShakeDecay)
	for i := range s.Enemies {
		s.Enemies[i].DecayFlash(dt)
	}
	s.Player.DecayCosmetics(dt)
}

func (s *Sim) updateBullets(dt float64) {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Update(dt)
		if !b.Expired(s.Arena, s.Tuning.Bullet.Margin) {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

func (s *Sim) fire() {
	p := s.Player
	mx, my := p.Muzzle()
	s.Bullets = append(s.Bullets, NewBullet(mx, my, p.Angle, s.Tuning.Bullet))
	s.Particles.Spawn(BurstMuzzle, mx, my, p.Angle)
	s.Cue(CueShoot, CueParams{Gain: 0.5, Pan: s.pan(mx)})
	s.Events.Emit(Event{Type: EventShot, X: mx, Y: my})
}

func (s *Sim) announceWave() {
	s.Cue(CueWaveStart, CueParams{})
	s.Events.Emit(Event{Type: EventWaveStarted, Data: s.Session.Wave})
	s.log.Info("wave started", "wave", s.Session.Wave,
		"enemies", s.Session.EnemiesPerWave, "spawn_rate", s.Session.SpawnRate)
}

// Feedback implementation.

func (s *Sim) AddShake(intensity float64) { s.Effects.AddShake(s.rng, intensity) }

func (s *Sim) AddHitStop(d float64) { s.Effects.AddHitStop(d) }

// Cue forwards to the audio collaborator unless the session is muted. A
// failing player is logged and otherwise ignored.
func (s *Sim) Cue(name Cue, params CueParams) {
	if s.Session.Muted {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("cue failed", "cue", name, "panic", r)
		}
	}()
	s.cues.PlayCue(name, params)
}

func (s *Sim) Burst(kind BurstKind, x, y, angle float64) {
	s.Particles.Spawn(kind, x, y, angle)
	if kind == BurstDash {
		s.Events.Emit(Event{Type: EventDash, X: x, Y: y})
	}
}

// pan maps an arena x coordinate to stereo position.
func (s *Sim) pan(x float64) float64 {
	w := s.Arena.W()
	if w <= 0 {
		return 0
	}
	return clampF((x-s.Arena.X0)/w*2-1, -1, 1) * 0.6
}
