package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Frame timing. Longer frames are clamped so a stalled window can't
// push entities through each other on the next tick.
const MaxDeltaTime = 1.0 / 30.0

// Arena defaults (logical pixels), used until a frontend reports its viewport.
const (
	DefaultArenaWidth  = 1280
	DefaultArenaHeight = 720
)

// Pools and caps.
const (
	MaxParticles   = 4000
	MaxAfterimages = 5
)

// fireEpsilon absorbs float drift when a cooldown is decremented in
// fixed steps that should land exactly on zero.
const fireEpsilon = 1e-9

// Tuning holds every gameplay constant. The zero value is not usable;
// start from DefaultTuning.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Dash    DashTuning    `yaml:"dash"`
	Bullet  BulletTuning  `yaml:"bullet"`
	Enemy   EnemyTuning   `yaml:"enemy"`
	Wave    WaveTuning    `yaml:"wave"`
	Combat  CombatTuning  `yaml:"combat"`
	Effects EffectsTuning `yaml:"effects"`
}

type PlayerTuning struct {
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`
	MaxHP            float64 `yaml:"max_hp"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`
	FireRate         float64 `yaml:"fire_rate"` // seconds between shots
	RecoilKick       float64 `yaml:"recoil_kick"`
	RecoilRecover    float64 `yaml:"recoil_recover"`  // px/s
	AfterimageFade   float64 `yaml:"afterimage_fade"` // alpha/s
}

type DashTuning struct {
	Duration        float64 `yaml:"duration"`
	Cooldown        float64 `yaml:"cooldown"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

type BulletTuning struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
	Margin   float64 `yaml:"margin"` // distance outside the arena before removal
}

type EnemyTuning struct {
	RadiusMin    float64 `yaml:"radius_min"`
	RadiusMax    float64 `yaml:"radius_max"`
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	HP           int     `yaml:"hp"`
	SpawnMargin  float64 `yaml:"spawn_margin"`
	HitFlashTime float64 `yaml:"hit_flash_time"`
}

// WaveTuning parameterizes enemiesPerWave = Base + PerWave*wave and
// spawnRate = max(MinSpawnRate, BaseSpawnRate - SpawnRateStep*wave).
type WaveTuning struct {
	BaseEnemies   int     `yaml:"base_enemies"`
	PerWave       int     `yaml:"per_wave"`
	BaseSpawnRate float64 `yaml:"base_spawn_rate"`
	SpawnRateStep float64 `yaml:"spawn_rate_step"`
	MinSpawnRate  float64 `yaml:"min_spawn_rate"`
	BannerTime    float64 `yaml:"banner_time"`
}

type CombatTuning struct {
	KillScore      int     `yaml:"kill_score"` // multiplied by the combo
	ContactScore   int     `yaml:"contact_score"`
	ContactDamage  float64 `yaml:"contact_damage"`
	ComboResetTime float64 `yaml:"combo_reset_time"`
}

type EffectsTuning struct {
	ShakeDecay      float64 `yaml:"shake_decay"` // per tick
	ShakeKill       float64 `yaml:"shake_kill"`
	ShakeContact    float64 `yaml:"shake_contact"`
	ShakeDamage     float64 `yaml:"shake_damage"`
	ShakeDash       float64 `yaml:"shake_dash"`
	HitStopKill     float64 `yaml:"hit_stop_kill"`
	HitStopContact  float64 `yaml:"hit_stop_contact"`
	HitStopDamage   float64 `yaml:"hit_stop_damage"`
	ParticleDamping float64 `yaml:"particle_damping"` // per tick
}

// DefaultTuning returns the stock arcade feel.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Radius:           15,
			Speed:            260,
			MaxHP:            100,
			InvulnerableTime: 1.0,
			FireRate:         0.15,
			RecoilKick:       5,
			RecoilRecover:    40,
			AfterimageFade:   3.0,
		},
		Dash: DashTuning{
			Duration:        0.15,
			Cooldown:        0.8,
			SpeedMultiplier: 4.0,
		},
		Bullet: BulletTuning{
			Speed:    750,
			Radius:   4,
			Lifetime: 1.5,
			Margin:   50,
		},
		Enemy: EnemyTuning{
			RadiusMin:    12,
			RadiusMax:    22,
			SpeedMin:     60,
			SpeedMax:     130,
			HP:           1,
			SpawnMargin:  30,
			HitFlashTime: 0.1,
		},
		Wave: WaveTuning{
			BaseEnemies:   5,
			PerWave:       2,
			BaseSpawnRate: 2.0,
			SpawnRateStep: 0.1,
			MinSpawnRate:  0.5,
			BannerTime:    2.0,
		},
		Combat: CombatTuning{
			KillScore:      10,
			ContactScore:   5,
			ContactDamage:  20,
			ComboResetTime: 2.0,
		},
		Effects: EffectsTuning{
			ShakeDecay:      0.9,
			ShakeKill:       4,
			ShakeContact:    10,
			ShakeDamage:     8,
			ShakeDash:       3,
			HitStopKill:     0.03,
			HitStopContact:  0.08,
			HitStopDamage:   0.06,
			ParticleDamping: 0.94,
		},
	}
}

// Validate reports every out-of-range value at once.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	unit := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", name, v))
		}
	}

	positive("player.radius", t.Player.Radius)
	positive("player.speed", t.Player.Speed)
	positive("player.max_hp", t.Player.MaxHP)
	positive("player.fire_rate", t.Player.FireRate)
	positive("dash.duration", t.Dash.Duration)
	positive("dash.speed_multiplier", t.Dash.SpeedMultiplier)
	positive("bullet.speed", t.Bullet.Speed)
	positive("bullet.radius", t.Bullet.Radius)
	positive("bullet.lifetime", t.Bullet.Lifetime)
	positive("enemy.radius_min", t.Enemy.RadiusMin)
	positive("enemy.speed_min", t.Enemy.SpeedMin)
	positive("wave.min_spawn_rate", t.Wave.MinSpawnRate)
	positive("combat.combo_reset_time", t.Combat.ComboResetTime)
	unit("effects.shake_decay", t.Effects.ShakeDecay)
	unit("effects.particle_damping", t.Effects.ParticleDamping)

	if t.Enemy.RadiusMax < t.Enemy.RadiusMin {
		errs = append(errs, fmt.Errorf("enemy.radius_max %v < radius_min %v", t.Enemy.RadiusMax, t.Enemy.RadiusMin))
	}
	if t.Enemy.SpeedMax < t.Enemy.SpeedMin {
		errs = append(errs, fmt.Errorf("enemy.speed_max %v < speed_min %v", t.Enemy.SpeedMax, t.Enemy.SpeedMin))
	}
	if t.Enemy.HP < 1 {
		errs = append(errs, fmt.Errorf("enemy.hp must be >= 1, got %d", t.Enemy.HP))
	}
	if t.Wave.BaseEnemies+t.Wave.PerWave < 1 {
		errs = append(errs, errors.New("wave must spawn at least one enemy"))
	}
	for name, v := range map[string]float64{
		"player.invulnerable_time": t.Player.InvulnerableTime,
		"dash.cooldown":            t.Dash.Cooldown,
		"bullet.margin":            t.Bullet.Margin,
		"enemy.spawn_margin":       t.Enemy.SpawnMargin,
		"wave.banner_time":         t.Wave.BannerTime,
		"combat.contact_damage":    t.Combat.ContactDamage,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}
	return errors.Join(errs...)
}

// ParseTuning overlays YAML onto the defaults. Unknown keys are rejected so
// a typo doesn't silently fall back to a default.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
