package scene

import (
	"fmt"
	"math"
	"strings"

	"arena/internal/game"
)

// TextLine is one run of HUD text in framebuffer pixels. X, Y is the top
// left of the first glyph.
type TextLine struct {
	Text  string
	X, Y  int
	Scale float32
	Col   game.RGB
	Alpha float32
}

var (
	white  = game.RGB{R: 255, G: 255, B: 255}
	yellow = game.RGB{R: 255, G: 255, B: 100}
	red    = game.RGB{R: 255, G: 80, B: 80}
	grey   = game.RGB{R: 150, G: 150, B: 160}
)

const hpBarChars = 16

// hudScale grows text with the framebuffer so HiDPI stays readable.
func hudScale(fbH int) float32 {
	return float32(math.Max(1, math.Floor(float64(fbH)/360)))
}

func appendHUD(lines []TextLine, snap game.Snapshot, fps float64, fbW, fbH int) []TextLine {
	s := hudScale(fbH)
	pad := int(8 * s)
	lh := int(float32(FontCellH) * s)

	add := func(text string, x, y int, scale float32, col game.RGB, alpha float64) {
		lines = append(lines, TextLine{Text: text, X: x, Y: y, Scale: scale, Col: col, Alpha: float32(alpha)})
	}
	centred := func(text string, y int, scale float32, col game.RGB, alpha float64) {
		add(text, fbW/2-TextWidth(text, scale)/2, y, scale, col, alpha)
	}

	add(fmt.Sprintf("SCORE %d", snap.Score), pad, pad, s, white, 1)
	centred(fmt.Sprintf("WAVE %d", snap.Wave), pad, s, white, 1)

	right := pad
	if snap.Combo > 1 {
		combo := fmt.Sprintf("x%d COMBO", snap.Combo)
		add(combo, fbW-TextWidth(combo, s)-pad, right, s, yellow, math.Min(1, 0.3+snap.ComboTimer))
		right += lh
	}
	if snap.Muted {
		add("MUTED", fbW-TextWidth("MUTED", s)-pad, right, s, grey, 1)
	}

	bar := HealthBar(snap.Player.HP)
	barY := fbH - pad - lh
	add(bar, pad, barY, s, game.HealthBarColor(snap.Player.HP.Fraction()), 1)

	dash := "DASH"
	dashCol, dashAlpha := white, 1.0
	if snap.Player.Dash.Cooldown > 0 {
		dashCol, dashAlpha = grey, 0.5
	}
	add(dash, pad+TextWidth(bar, s)+pad*2, barY, s, dashCol, dashAlpha)

	switch snap.State {
	case game.StatePlaying:
		if snap.BannerTimer > 0 {
			centred(fmt.Sprintf("WAVE %d", snap.Wave), fbH/2-lh*3, s*3, white, math.Min(1, snap.BannerTimer))
		}
	case game.StatePaused:
		centred("PAUSED", fbH/2-lh*2, s*3, white, 1)
		centred("P to resume", fbH/2+lh, s, grey, 1)
	case game.StateGameOver:
		centred("GAME OVER", fbH/2-lh*3, s*3, red, 1)
		centred(fmt.Sprintf("Final Score: %d   Wave: %d", snap.Score, snap.Wave), fbH/2, s, yellow, 1)
		centred("Press R to restart", fbH/2+lh*2, s, white, 1)
	}

	if snap.Debug {
		y := pad + lh*2
		for _, l := range DebugLines(snap, fps) {
			add(l, pad, y, s, grey, 0.9)
			y += lh
		}
	}
	return lines
}

// HealthBar renders hp as a fixed-width text gauge.
func HealthBar(hp game.Health) string {
	n := int(math.Ceil(hpBarChars * hp.Fraction()))
	return fmt.Sprintf("HP [%-*s]", hpBarChars, strings.Repeat("#", n))
}

// DebugLines is the debug overlay's stats block.
func DebugLines(snap game.Snapshot, fps float64) []string {
	return []string{
		fmt.Sprintf("fps %.0f  state %s  t=%.1fs", fps, snap.State, snap.Elapsed),
		fmt.Sprintf("enemies %d  bullets %d  particles %d", len(snap.Enemies), len(snap.Bullets), len(snap.Particles)),
		fmt.Sprintf("pos %.0f,%.0f  invuln %.2f", snap.Player.X, snap.Player.Y, snap.Player.Invulnerable),
		fmt.Sprintf("hitstop %.3f  shake %.1f,%.1f", snap.HitStop, snap.ShakeX, snap.ShakeY),
	}
}

// TextWidth returns the width in framebuffer pixels of a string at scale.
func TextWidth(text string, scale float32) int {
	lineLen, maxLineLen := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			maxLineLen = max(maxLineLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	maxLineLen = max(maxLineLen, lineLen)
	return int(float32(maxLineLen*FontCellW) * scale)
}
