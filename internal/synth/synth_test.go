package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{Dash, Shoot, Impact, Hurt, Death, Fanfare}

func TestGenerateAllKinds(t *testing.T) {
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			buf := Generate(k, Params{})
			require.NotEmpty(t, buf)
			require.Zero(t, len(buf)%FrameBytes)

			peak := 0.0
			for i, n := 0, Frames(buf); i < n; i++ {
				l, r := Sample(buf, i)
				require.False(t, math.IsNaN(l) || math.IsNaN(r), "frame %d", i)
				require.LessOrEqual(t, math.Abs(l), 1.0)
				require.LessOrEqual(t, math.Abs(r), 1.0)
				peak = math.Max(peak, math.Abs(l))
			}
			assert.Greater(t, peak, 0.05, "audible")
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	assert.Nil(t, Generate(Kind(99), Params{}))
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(Impact, Params{Seed: 7})
	b := Generate(Impact, Params{Seed: 7})
	assert.Equal(t, a, b)
	c := Generate(Impact, Params{Seed: 8})
	assert.NotEqual(t, a, c)
}

func TestPitchChangesTone(t *testing.T) {
	lo := Generate(Hurt, Params{Pitch: 1})
	hi := Generate(Hurt, Params{Pitch: 2})
	assert.Equal(t, len(lo), len(hi))
	assert.NotEqual(t, lo, hi)
	assert.Equal(t, Generate(Hurt, Params{}), lo, "zero pitch means unity")
}

func TestPanHardLeft(t *testing.T) {
	buf := Generate(Hurt, Params{Pan: -1})
	for i, n := 0, Frames(buf); i < n; i++ {
		_, r := Sample(buf, i)
		require.Zero(t, r)
	}
	centre := Generate(Hurt, Params{})
	l, r := Sample(centre, Frames(centre)/4)
	assert.Equal(t, l, r)
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -1.5, -1, 0, 0.5, 1, 3, 1e6} {
		v := softSat(x)
		assert.LessOrEqual(t, math.Abs(v), 1.0, "x=%v", x)
	}
	assert.Zero(t, softSat(0))
}

func TestADSR(t *testing.T) {
	assert.Zero(t, adsr(0, 0.1, 0.2, 0.5, 0.2))
	assert.InDelta(t, 1, adsr(0.1, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0, adsr(1, 0.1, 0.2, 0.5, 0.2), 1e-9)
}

func TestLCGRange(t *testing.T) {
	seed := uint64(1)
	for i := 0; i < 10000; i++ {
		v := lcg(&seed)
		require.True(t, v >= -1 && v <= 1)
	}
}
