package tty

import (
	"fmt"
	"math"
	"strings"

	"arena/internal/game"
	"arena/internal/scene"
)

// Each terminal cell stands for a cellW x cellH patch of arena. Row 0 is
// the HUD; the arena starts at row 1.
const (
	cellW   = 8.0
	cellH   = 16.0
	hudRows = 1
)

// arenaSize is the play field for a terminal of cols x rows cells.
func arenaSize(cols, rows int) (float64, float64) {
	return float64(cols) * cellW, float64(max(rows-hudRows, 1)) * cellH
}

// cellCentre is the arena point at the middle of a terminal cell.
func cellCentre(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * cellW, (float64(y-hudRows) + 0.5) * cellH
}

var (
	hudFg   = game.RGB{R: 230, G: 230, B: 235}
	hudDim  = game.RGB{R: 120, G: 120, B: 130}
	hudGold = game.RGB{R: 255, G: 255, B: 100}
	hudRed  = game.RGB{R: 255, G: 80, B: 80}
)

type painter struct {
	c      *canvas
	ox, oy float64 // shake offset in arena pixels
}

func (p painter) toCell(x, y float64) (int, int) {
	return int(math.Floor((x + p.ox) / cellW)), hudRows + int(math.Floor((y+p.oy)/cellH))
}

func (p painter) point(x, y float64, ch rune, fg game.RGB) {
	cx, cy := p.toCell(x, y)
	if cy < hudRows {
		return
	}
	p.c.set(cx, cy, ch, fg)
}

// disc fills every cell whose centre lies inside the circle, and always at
// least the cell under the centre.
func (p painter) disc(x, y, r float64, ch rune, fg game.RGB) {
	x0, y0 := p.toCell(x-r, y-r)
	x1, y1 := p.toCell(x+r, y+r)
	for cy := max(y0, hudRows); cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			mx, my := cellCentre(cx, cy)
			mx, my = mx-p.ox, my-p.oy
			if (mx-x)*(mx-x)+(my-y)*(my-y) <= r*r {
				p.c.set(cx, cy, ch, fg)
			}
		}
	}
	p.point(x, y, ch, fg)
}

// paint draws snap into c. c must already be sized to the terminal.
func paint(c *canvas, snap game.Snapshot, fps float64) {
	c.clear(game.Palette.Background)
	p := painter{c: c, ox: snap.ShakeX, oy: snap.ShakeY}

	for i := range snap.Particles {
		pt := &snap.Particles[i]
		a := pt.Alpha()
		if a < 0.15 {
			continue
		}
		ch := '.'
		switch pt.Kind {
		case game.ParticleGlow:
			ch = '*'
		case game.ParticleSmoke:
			ch = '~'
		case game.ParticleBlood:
			ch = ','
		}
		p.point(pt.X, pt.Y, ch, game.Palette.Background.Lerp(pt.Col, a))
	}

	pl := &snap.Player
	for _, a := range pl.Afterimages {
		p.disc(a.X, a.Y, pl.Radius, '░', game.Palette.Background.Lerp(game.Palette.Dash, a.Alpha))
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		col := game.Palette.Enemy.Lerp(game.Palette.EnemyFlash, e.HitFlash*10)
		p.disc(e.X, e.Y, e.Radius, '▓', col)
	}
	if snap.State != game.StateGameOver {
		col := game.Palette.Player
		switch {
		case pl.Dashing():
			col = game.Palette.Dash
		case pl.Invulnerable > 0:
			col = game.Palette.PlayerHurt
		}
		p.disc(pl.X, pl.Y, pl.Radius, '█', col)
		mx, my := pl.Muzzle()
		p.point(mx+math.Cos(pl.Angle)*cellW, my+math.Sin(pl.Angle)*cellW, aimRune(pl.Angle), game.Palette.Glow)
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		p.point(b.X, b.Y, '•', game.Palette.Bullet)
	}

	paintHUD(c, snap, fps)
}

// aimRune picks the line character closest to the facing.
func aimRune(angle float64) rune {
	// Screen y grows downwards, so -pi/2 is up.
	oct := int(math.Round(angle/(math.Pi/4))) & 7
	return []rune{'─', '╲', '│', '╱', '─', '╲', '│', '╱'}[oct]
}

func paintHUD(c *canvas, snap game.Snapshot, fps float64) {
	parts := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("WAVE %d", snap.Wave),
		scene.HealthBar(snap.Player.HP),
	}
	if snap.Player.Dash.Cooldown <= 0 {
		parts = append(parts, "DASH")
	} else {
		parts = append(parts, "dash")
	}
	if snap.Combo > 1 {
		parts = append(parts, fmt.Sprintf("x%d COMBO", snap.Combo))
	}
	if snap.Muted {
		parts = append(parts, "MUTED")
	}
	for x := 0; x < c.w; x++ {
		c.set(x, 0, ' ', hudFg)
	}
	c.text(1, 0, strings.Join(parts, "  "), hudFg, true)

	mid := hudRows + (c.h-hudRows)/2
	switch snap.State {
	case game.StatePlaying:
		if snap.BannerTimer > 0 {
			c.centred(mid-2, fmt.Sprintf("~ WAVE %d ~", snap.Wave), hudGold, true)
		}
	case game.StatePaused:
		c.centred(mid-1, "PAUSED", hudFg, true)
		c.centred(mid+1, "p to resume", hudDim, false)
	case game.StateGameOver:
		c.centred(mid-2, "GAME OVER", hudRed, true)
		c.centred(mid, fmt.Sprintf("Final Score: %d   Wave: %d", snap.Score, snap.Wave), hudGold, false)
		c.centred(mid+2, "Press R to restart", hudFg, false)
	}

	if snap.Debug {
		for i, l := range scene.DebugLines(snap, fps) {
			c.text(1, hudRows+1+i, l, hudDim, false)
		}
	}
}
