// Package synth renders the procedural sound effects as interleaved
// stereo float32 PCM, ready for an oto player.
package synth

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	FrameBytes   = 8 // two float32 channels
)

// Kind identifies a sound effect.
type Kind int

const (
	Dash Kind = iota
	Shoot
	Impact
	Hurt
	Death
	Fanfare
)

func (k Kind) String() string {
	switch k {
	case Dash:
		return "dash"
	case Shoot:
		return "shoot"
	case Impact:
		return "impact"
	case Hurt:
		return "hurt"
	case Death:
		return "death"
	case Fanfare:
		return "fanfare"
	}
	return "unknown"
}

// Params varies a single rendering.
type Params struct {
	Pitch float64 // frequency multiplier, 0 means 1
	Pan   float64 // -1 left .. 1 right
	Seed  uint64  // noise variant
}

// Generate renders kind into a new buffer. Unknown kinds yield nil.
func Generate(kind Kind, p Params) []byte {
	if p.Pitch <= 0 {
		p.Pitch = 1
	}
	p.Pan = clampF(p.Pan, -1, 1)
	if p.Seed == 0 {
		p.Seed = uint64(kind+1) * 0x9E3779B97F4A7C15
	}
	switch kind {
	case Dash:
		return genDash(p)
	case Shoot:
		return genShoot(p)
	case Impact:
		return genImpact(p)
	case Hurt:
		return genHurt(p)
	case Death:
		return genDeath(p)
	case Fanfare:
		return genFanfare(p)
	}
	return nil
}

// Frames reports how many stereo frames buf holds.
func Frames(buf []byte) int { return len(buf) / FrameBytes }

// Sample decodes the left and right channel of frame i.
func Sample(buf []byte, i int) (left, right float64) {
	o := i * FrameBytes
	l := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	r := uint32(buf[o+4]) | uint32(buf[o+5])<<8 | uint32(buf[o+6])<<16 | uint32(buf[o+7])<<24
	return float64(math.Float32frombits(l)), float64(math.Float32frombits(r))
}

// ---- Sound effects -------------------------------------------------------

// genDash: airy noise sweep with a low FM swell under it.
func genDash(p Params) []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	seed := p.Seed
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		pr := float64(i) / float64(n)
		// Lowpass opens then closes: "whoosh".
		k := 0.08 + 0.5*math.Sin(math.Pi*pr)
		lp = lp*(1-k) + lcg(&seed)*k
		env := adsr(pr, 0.15, 0.35, 0.4, 0.4)
		swell := fm(t, 90*p.Pitch*(1+pr), 0.5, 1.2) * env * 0.18
		s := lp*env*0.55 + swell
		putPanned(buf, i, softSat(s), p.Pan)
	}
	return buf
}

// genShoot: short crack over a fast pitch drop.
func genShoot(p Params) []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	seed := p.Seed
	phase := 0.0
	for i := 0; i < n; i++ {
		pr := float64(i) / float64(n)
		crack := 0.0
		if pr < 0.06 {
			crack = lcg(&seed) * (1 - pr/0.06) * 0.5
		}
		freq := 900 * p.Pitch * math.Pow(0.22, pr)
		phase += 2 * math.Pi * freq / SampleRate
		tone := triWave(phase) * math.Exp(-pr*9) * 0.34
		body := lcg(&seed) * math.Pow(1-pr, 6) * 0.12
		putPanned(buf, i, softSat((crack+tone+body)*0.8), p.Pan)
	}
	return buf
}

// genImpact: punchy pop with a noise splash; pitch rises with the combo.
func genImpact(p Params) []byte {
	n := int(0.13 * SampleRate)
	buf := makeBuf(n)
	seed := p.Seed
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		pr := float64(i) / float64(n)
		env := math.Exp(-pr * 11)
		pop := fm(t, (260-140*pr)*p.Pitch, 1.2, 1.4*env) * env * 0.42
		lp = lp*0.6 + lcg(&seed)*0.4
		splash := lp * math.Exp(-pr*18) * 0.3
		ring := math.Sin(2*math.Pi*1800*p.Pitch*t) * math.Exp(-pr*40) * 0.06
		putPanned(buf, i, softSat((pop+splash+ring)*0.85), p.Pan)
	}
	return buf
}

// genHurt: descending FM tone, "oof".
func genHurt(p Params) []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		pr := float64(i) / float64(n)
		env := adsr(pr, 0.015, 0.55, 0.1, 0.25)
		freq := (320 - 220*pr) * p.Pitch
		s := fm(t, freq, 1.5, 2.8*(1-pr)) * env * 0.52
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putPanned(buf, i, softSat(s), p.Pan)
	}
	return buf
}

// genDeath: noise blast into a slow descending minor chord.
func genDeath(p Params) []byte {
	n := int(0.9 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.05}, // E4
		{261.63, 0.19}, // C4
		{220.00, 0.33}, // A3
	}
	mix := make([]float64, n)
	seed := p.Seed
	lp := 0.0
	for i := 0; i < n; i++ {
		pr := float64(i) / float64(n)
		lp = lp*0.9 + lcg(&seed)*0.1
		mix[i] = lp * math.Exp(-pr*9) * 0.6
	}
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * p.Pitch * (1 - np*0.03)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putPanned(buf, i, softSat(s), p.Pan)
	}
	return buf
}

// genFanfare: ascending FM bell staircase; each note rings over the next.
func genFanfare(p Params) []byte {
	notes := []float64{440, 554.37, 659.25, 880}
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		freq *= p.Pitch
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putPanned(buf, i, softSat(s), p.Pan)
	}
	return buf
}
