package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60.0

type recordingCues struct {
	played []Cue
	params []CueParams
}

func (r *recordingCues) PlayCue(name Cue, params CueParams) {
	r.played = append(r.played, name)
	r.params = append(r.params, params)
}

func (r *recordingCues) count(c Cue) int {
	n := 0
	for _, p := range r.played {
		if p == c {
			n++
		}
	}
	return n
}

// fakeFeedback records what an entity asked the simulation to do.
type fakeFeedback struct {
	shakes   []float64
	hitStops []float64
	cues     []Cue
	bursts   []BurstKind
}

func (f *fakeFeedback) AddShake(i float64)                 { f.shakes = append(f.shakes, i) }
func (f *fakeFeedback) AddHitStop(d float64)               { f.hitStops = append(f.hitStops, d) }
func (f *fakeFeedback) Cue(name Cue, _ CueParams)          { f.cues = append(f.cues, name) }
func (f *fakeFeedback) Burst(k BurstKind, _, _, _ float64) { f.bursts = append(f.bursts, k) }

// newTestSim returns a sim with the wave banner held open so nothing spawns
// or advances unless a test asks for it.
func newTestSim(t *testing.T) (*Sim, *recordingCues) {
	t.Helper()
	cues := &recordingCues{}
	s := NewSim(DefaultTuning(), 42, WithCues(cues))
	s.Session.BannerTimer = 1e9
	require.Equal(t, StatePlaying, s.Session.State)
	return s, cues
}

// aimRight points the player along +x without moving it.
func aimRight(s *Sim) Input {
	return Input{AimX: s.Player.X + 100, AimY: s.Player.Y}
}

func countEvents(s *Sim, typ EventType) *int {
	n := new(int)
	s.Events.Subscribe(typ, func(Event) { *n++ })
	return n
}
