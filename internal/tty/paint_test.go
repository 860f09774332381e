package tty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena/internal/game"
)

func snapshotFor(t *testing.T, cols, rows int) game.Snapshot {
	t.Helper()
	w, h := arenaSize(cols, rows)
	s := game.NewSim(game.DefaultTuning(), 3, game.WithArena(w, h))
	return s.Snapshot()
}

func painted(t *testing.T, snap game.Snapshot, cols, rows int) *canvas {
	t.Helper()
	var c canvas
	c.resize(cols, rows)
	paint(&c, snap, 60)
	return &c
}

func screenText(c *canvas) string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.row(y)
	}
	return strings.Join(rows, "\n")
}

func TestArenaSize(t *testing.T) {
	w, h := arenaSize(80, 25)
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 384.0, h)

	_, h = arenaSize(80, 0)
	assert.Equal(t, cellH, h)
}

func TestPaintHUD(t *testing.T) {
	snap := snapshotFor(t, 80, 25)
	c := painted(t, snap, 80, 25)
	hud := c.row(0)
	assert.Contains(t, hud, "SCORE 0")
	assert.Contains(t, hud, "WAVE 1")
	assert.Contains(t, hud, "HP [################]")
	assert.Contains(t, hud, "DASH")
	assert.True(t, c.at(1, 0).bold)
	// Fresh sessions show the wave banner.
	assert.Contains(t, screenText(c), "~ WAVE 1 ~")
}

func TestPaintPlayerAtCentre(t *testing.T) {
	snap := snapshotFor(t, 80, 25)
	c := painted(t, snap, 80, 25)
	cx := int(snap.Player.X / cellW)
	cy := hudRows + int(snap.Player.Y/cellH)
	assert.Equal(t, '█', c.at(cx, cy).ch)
	assert.Equal(t, game.Palette.Player, c.at(cx, cy).fg)
}

func TestPaintEntities(t *testing.T) {
	snap := snapshotFor(t, 80, 25)
	snap.Enemies = []game.Enemy{{X: 100, Y: 100, Radius: 15}}
	snap.Bullets = []game.Bullet{{X: 300, Y: 40, Radius: 4}}
	c := painted(t, snap, 80, 25)

	e, b := snap.Enemies[0], snap.Bullets[0]
	ex, ey := int(e.X/cellW), hudRows+int(e.Y/cellH)
	assert.Equal(t, '▓', c.at(ex, ey).ch)
	assert.Equal(t, game.Palette.Enemy, c.at(ex, ey).fg)

	bx, by := int(b.X/cellW), hudRows+int(b.Y/cellH)
	assert.Equal(t, '•', c.at(bx, by).ch)
}

func TestPaintShakeOffsets(t *testing.T) {
	snap := snapshotFor(t, 80, 25)
	snap.Bullets = []game.Bullet{{X: 300, Y: 40, Radius: 4}}
	snap.ShakeX = cellW
	c := painted(t, snap, 80, 25)
	b := snap.Bullets[0]
	bx, by := int(b.X/cellW)+1, hudRows+int(b.Y/cellH)
	assert.Equal(t, '•', c.at(bx, by).ch)
}

func TestPaintStates(t *testing.T) {
	snap := snapshotFor(t, 80, 25)
	snap.State = game.StatePaused
	assert.Contains(t, screenText(painted(t, snap, 80, 25)), "PAUSED")

	snap.State = game.StateGameOver
	snap.Score = 70
	text := screenText(painted(t, snap, 80, 25))
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "Final Score: 70")
	assert.Contains(t, text, "Press R to restart")
	assert.NotContains(t, text, "█")

	snap.State = game.StatePlaying
	snap.BannerTimer = 0
	snap.Combo = 4
	snap.Muted = true
	snap.Debug = true
	c := painted(t, snap, 80, 25)
	assert.Contains(t, c.row(0), "x4 COMBO")
	assert.Contains(t, c.row(0), "MUTED")
	assert.Contains(t, c.row(2), "fps 60")
}

func TestPaintTinyTerminal(t *testing.T) {
	snap := snapshotFor(t, 3, 2)
	require.NotPanics(t, func() { painted(t, snap, 3, 2) })
	require.NotPanics(t, func() { painted(t, snap, 0, 0) })
}

func TestAimRune(t *testing.T) {
	assert.Equal(t, '─', aimRune(0))
	assert.Equal(t, '│', aimRune(-1.5707963))
	assert.Equal(t, '╲', aimRune(0.78539816))
	assert.Equal(t, '╱', aimRune(-0.78539816))
}
