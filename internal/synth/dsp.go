package synth

import "math"

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

// putStereoF32LR writes independent left/right samples in [-1,1] at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	o := i * FrameBytes
	buf[o] = byte(lv)
	buf[o+1] = byte(lv >> 8)
	buf[o+2] = byte(lv >> 16)
	buf[o+3] = byte(lv >> 24)
	buf[o+4] = byte(rv)
	buf[o+5] = byte(rv >> 8)
	buf[o+6] = byte(rv >> 16)
	buf[o+7] = byte(rv >> 24)
}

// putPanned writes a mono sample panned across the stereo field. The near
// channel stays at full level; the far one falls off with an equal-power curve.
func putPanned(buf []byte, i int, s, pan float64) {
	x := 0.5 + 0.5*pan
	gl := math.Min(1, math.Sqrt(2*(1-x)))
	gr := math.Min(1, math.Sqrt(2*x))
	putStereoF32LR(buf, i, s*gl, s*gr)
}

// softSat applies gentle tanh-like saturation, no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
