package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addU8(c.R, dr), G: addU8(c.G, dg), B: addU8(c.B, db)}
}

func addU8(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Lerp blends towards o by t in [0,1].
func (c RGB) Lerp(o RGB, t float64) RGB {
	t = clampF(t, 0, 1)
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return RGB{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

var Palette = struct {
	Background RGB
	Grid       RGB
	Player     RGB
	PlayerHurt RGB
	Dash       RGB
	Bullet     RGB
	Enemy      RGB
	EnemyFlash RGB
	Spark      RGB
	Blood      RGB
	Smoke      RGB
	Glow       RGB
}{
	Background: RGB{R: 14, G: 14, B: 22},
	Grid:       RGB{R: 28, G: 30, B: 44},
	Player:     RGB{R: 90, G: 200, B: 255},
	PlayerHurt: RGB{R: 255, G: 110, B: 110},
	Dash:       RGB{R: 160, G: 235, B: 255},
	Bullet:     RGB{R: 255, G: 230, B: 120},
	Enemy:      RGB{R: 235, G: 70, B: 90},
	EnemyFlash: RGB{R: 255, G: 255, B: 255},
	Spark:      RGB{R: 255, G: 190, B: 80},
	Blood:      RGB{R: 170, G: 30, B: 50},
	Smoke:      RGB{R: 90, G: 90, B: 105},
	Glow:       RGB{R: 255, G: 240, B: 200},
}
