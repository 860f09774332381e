package game

// Cue names an audio trigger point.
type Cue string

const (
	CueDash        Cue = "dash"
	CueShoot       Cue = "shoot"
	CueEnemyHit    Cue = "enemy_hit"
	CuePlayerHit   Cue = "player_hit"
	CuePlayerDeath Cue = "player_death"
	CueWaveStart   Cue = "wave_start"
)

// Cues lists every cue the simulation can emit.
var Cues = []Cue{CueDash, CueShoot, CueEnemyHit, CuePlayerHit, CuePlayerDeath, CueWaveStart}

// CueParams tweaks a single playback. Zero values mean "default".
type CueParams struct {
	Gain  float64 // 0..1 volume scale
	Pitch float64 // frequency multiplier
	Pan   float64 // -1 left .. 1 right
}

// CuePlayer receives fire-and-forget audio triggers. Implementations must
// return immediately; the simulation never waits on audio.
type CuePlayer interface {
	PlayCue(name Cue, params CueParams)
}

// NopCues is the silent CuePlayer.
type NopCues struct{}

func (NopCues) PlayCue(Cue, CueParams) {}
