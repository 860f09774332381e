package game

// RectF is an axis-aligned rectangle in arena space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewArena returns the play bounds for a viewport of w x h logical pixels.
func NewArena(w, h float64) RectF {
	if w <= 0 {
		w = DefaultArenaWidth
	}
	if h <= 0 {
		h = DefaultArenaHeight
	}
	return RectF{X1: w, Y1: h}
}

func (r RectF) W() float64 { return r.X1 - r.X0 }
func (r RectF) H() float64 { return r.Y1 - r.Y0 }

func (r RectF) ContainsPoint(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Grow expands the rectangle by m on every side.
func (r RectF) Grow(m float64) RectF {
	return RectF{X0: r.X0 - m, Y0: r.Y0 - m, X1: r.X1 + m, Y1: r.Y1 + m}
}

// ClampCircle keeps a circle of the given radius fully inside r. When the
// rectangle is narrower than the circle it pins to the centre.
func (r RectF) ClampCircle(x, y, radius float64) (float64, float64) {
	if r.W() <= 2*radius {
		x = (r.X0 + r.X1) * 0.5
	} else {
		x = clampF(x, r.X0+radius, r.X1-radius)
	}
	if r.H() <= 2*radius {
		y = (r.Y0 + r.Y1) * 0.5
	} else {
		y = clampF(y, r.Y0+radius, r.Y1-radius)
	}
	return x, y
}
