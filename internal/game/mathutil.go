package game

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
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

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

// decay counts a timer down by dt, stopping at zero.
func decay(t, dt float64) float64 {
	t -= dt
	if t < 0 {
		return 0
	}
	return t
}

// normalize returns the unit vector of (x, y). Zero-length input yields
// ok=false and a zero vector.
func normalize(x, y float64) (nx, ny float64, ok bool) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}

// overlaps reports whether two circles intersect (strictly closer than the
// sum of their radii).
func overlaps(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	r := ar + br
	return dx*dx+dy*dy < r*r
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
