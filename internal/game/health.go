package game

// Health tracks HP, always within [0, Max].
type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

func (h *Health) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return clampF(h.Current/h.Max, 0, 1)
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// HealthBarColor returns green/yellow/red based on fraction.
func HealthBarColor(frac float64) RGB {
	if frac > 0.6 {
		return RGB{R: 60, G: 220, B: 60}
	}
	if frac > 0.3 {
		return RGB{R: 220, G: 220, B: 60}
	}
	return RGB{R: 220, G: 60, B: 60}
}
