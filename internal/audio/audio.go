// Package audio plays the simulation's cues through oto.
package audio

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"arena/internal/game"
	"arena/internal/synth"
)

// maxVoices limits simultaneous effects; more just turns into clipping.
const maxVoices = 12

const defaultVolume = 0.58

// Player turns cues into fire-and-forget oto players. It implements
// game.CuePlayer.
type Player struct {
	ctx   *oto.Context
	ready chan struct{}
	log   *slog.Logger

	volume  atomic.Uint64 // float64 bits
	voices  atomic.Int32
	variant atomic.Uint64
}

// New opens the audio device. Callers treat an error as "run silent".
func New(log *slog.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Player{ctx: ctx, ready: ready, log: log}
	p.SetVolume(defaultVolume)
	return p, nil
}

// Open starts the sound device at the given volume. When the device is
// unavailable it logs and returns a silent player.
func Open(volume float64, log *slog.Logger) game.CuePlayer {
	p, err := New(log)
	if err != nil {
		if log != nil {
			log.Warn("audio init failed (continuing without sound)", "err", err)
		}
		return game.NopCues{}
	}
	p.SetVolume(volume)
	return p
}

// SetVolume sets the master effects volume in [0,1].
func (p *Player) SetVolume(v float64) {
	p.volume.Store(math.Float64bits(math.Max(0, math.Min(1, v))))
}

func (p *Player) Volume() float64 {
	return math.Float64frombits(p.volume.Load())
}

// PlayCue never blocks: the buffer is rendered here and played on its own
// goroutine. Cues arriving before the device is ready are dropped.
func (p *Player) PlayCue(name game.Cue, params game.CueParams) {
	kind, ok := KindFor(name)
	if !ok {
		p.log.Debug("unknown cue", "cue", name)
		return
	}
	gain := params.Gain
	if gain == 0 {
		gain = 1
	}
	vol := p.Volume() * math.Max(0, math.Min(1, gain))
	if vol <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	if p.voices.Add(1) > maxVoices {
		p.voices.Add(-1)
		return
	}

	samples := synth.Generate(kind, synth.Params{
		Pitch: params.Pitch,
		Pan:   params.Pan,
		Seed:  p.variant.Add(1) * 0x9E3779B97F4A7C15,
	})
	if len(samples) == 0 {
		p.voices.Add(-1)
		return
	}
	go func() {
		defer p.voices.Add(-1)
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Debug("close player", "cue", name, "err", err)
		}
	}()
}

// KindFor maps a simulation cue to its sound effect.
func KindFor(c game.Cue) (synth.Kind, bool) {
	switch c {
	case game.CueDash:
		return synth.Dash, true
	case game.CueShoot:
		return synth.Shoot, true
	case game.CueEnemyHit:
		return synth.Impact, true
	case game.CuePlayerHit:
		return synth.Hurt, true
	case game.CuePlayerDeath:
		return synth.Death, true
	case game.CueWaveStart:
		return synth.Fanfare, true
	}
	return 0, false
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
