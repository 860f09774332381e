// Package scene turns a simulation snapshot into draw lists: point-sprite
// buffers for the GPU and HUD text lines. It draws nothing itself.
package scene

import (
	"math"

	"arena/internal/game"
)

// FloatsPerSprite is the sprite vertex layout: x, y, size, r, g, b, a, rotation.
const FloatsPerSprite = 8

// MaxSprites caps a single buffer.
const MaxSprites = 20000

const gridSpacing = 40.0

// Camera maps arena space to the framebuffer: X, Y is the arena point at
// the framebuffer centre, Zoom is framebuffer pixels per arena pixel.
type Camera struct {
	X, Y float64
	Zoom float64
}

// ToScreen converts an arena point to framebuffer pixels.
func (c Camera) ToScreen(x, y float64, fbW, fbH int) (float64, float64) {
	return (x-c.X)*c.Zoom + float64(fbW)*0.5, (y-c.Y)*c.Zoom + float64(fbH)*0.5
}

// FitCamera centres the arena and scales it to fit the framebuffer, then
// applies the shake offset.
func FitCamera(arena game.RectF, shakeX, shakeY float64, fbW, fbH int) Camera {
	w, h := arena.W(), arena.H()
	zoom := 1.0
	if w > 0 && h > 0 && fbW > 0 && fbH > 0 {
		zoom = math.Min(float64(fbW)/w, float64(fbH)/h)
	}
	return Camera{
		X:    (arena.X0+arena.X1)*0.5 - shakeX,
		Y:    (arena.Y0+arena.Y1)*0.5 - shakeY,
		Zoom: zoom,
	}
}

// Frame holds one frame's draw lists. Buffers are reused between frames.
type Frame struct {
	Camera Camera
	Clear  game.RGB

	Backdrop  []float32 // square sprites
	Trails    []float32 // discs, alpha blended
	Particles []float32 // square sprites, alpha blended
	Bodies    []float32 // discs, alpha blended
	Glow      []float32 // radial falloff, additive
	Rings     []float32 // debug collision outlines

	Text []TextLine

	// FPS is set by the frontend and shown in the debug overlay.
	FPS float64
}

func (f *Frame) reset() {
	f.Backdrop = f.Backdrop[:0]
	f.Trails = f.Trails[:0]
	f.Particles = f.Particles[:0]
	f.Bodies = f.Bodies[:0]
	f.Glow = f.Glow[:0]
	f.Rings = f.Rings[:0]
	f.Text = f.Text[:0]
}

// Build fills f from snap for a framebuffer of fbW x fbH pixels.
func Build(snap game.Snapshot, fbW, fbH int, f *Frame) {
	f.reset()
	f.Camera = FitCamera(snap.Arena, snap.ShakeX, snap.ShakeY, fbW, fbH)
	f.Clear = game.Palette.Background

	f.Backdrop = appendGrid(f.Backdrop, snap.Arena)
	f.Trails = appendAfterimages(f.Trails, &snap.Player)
	for i := range snap.Bullets {
		f.Trails = appendBulletTrail(f.Trails, &snap.Bullets[i])
	}
	f.Particles, f.Glow = appendParticles(f.Particles, f.Glow, snap.Particles)

	for i := range snap.Enemies {
		f.Bodies = appendEnemy(f.Bodies, &snap.Enemies[i])
	}
	if snap.State != game.StateGameOver {
		f.Bodies = appendPlayer(f.Bodies, &snap.Player, snap.Elapsed)
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		f.Bodies = appendSprite(f.Bodies, b.X, b.Y, b.Radius*2, game.Palette.Bullet, 1, float32(b.Angle))
		f.Glow = appendSprite(f.Glow, b.X, b.Y, b.Radius*7, scaleRGB(game.Palette.Bullet, 0.35), 1, 0)
	}

	if snap.Debug {
		f.Rings = appendDebugRings(f.Rings, snap)
	}
	f.Text = appendHUD(f.Text, snap, f.FPS, fbW, fbH)
}

func appendSprite(buf []float32, x, y, size float64, col game.RGB, alpha float64, rot float32) []float32 {
	if len(buf) >= MaxSprites*FloatsPerSprite {
		return buf
	}
	return append(buf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0,
		float32(alpha), rot,
	)
}

func scaleRGB(c game.RGB, k float64) game.RGB {
	return game.RGB{}.Lerp(c, k)
}

// appendGrid lays a faint dot grid over the arena so movement reads.
func appendGrid(buf []float32, a game.RectF) []float32 {
	for y := a.Y0 + gridSpacing; y < a.Y1; y += gridSpacing {
		for x := a.X0 + gridSpacing; x < a.X1; x += gridSpacing {
			buf = appendSprite(buf, x, y, 2, game.Palette.Grid, 1, 0)
		}
	}
	return buf
}

func appendAfterimages(buf []float32, p *game.Player) []float32 {
	for _, a := range p.Afterimages {
		buf = appendSprite(buf, a.X, a.Y, p.Radius*2, game.Palette.Dash, a.Alpha, float32(a.Angle))
	}
	return buf
}

// appendBulletTrail smears the bullet back towards last tick's position.
func appendBulletTrail(buf []float32, b *game.Bullet) []float32 {
	const steps = 4
	for i := 1; i <= steps; i++ {
		t := float64(i) / (steps + 1)
		x := b.X + (b.PrevX-b.X)*t
		y := b.Y + (b.PrevY-b.Y)*t
		buf = appendSprite(buf, x, y, b.Radius*2*(1-t*0.5), game.Palette.Bullet, 0.5*(1-t), 0)
	}
	return buf
}

func appendParticles(norm, glow []float32, ps []game.Particle) ([]float32, []float32) {
	for i := range ps {
		p := &ps[i]
		a := p.Alpha()
		switch p.Kind {
		case game.ParticleSmoke:
			a *= 0.6
		case game.ParticleBlood:
			a = 1 - (1-a)*0.3
		}
		if a <= 0 {
			continue
		}
		if p.Kind == game.ParticleGlow {
			// Additive: premultiply by alpha.
			glow = appendSprite(glow, p.X, p.Y, p.Size*3, scaleRGB(p.Col, a), 1, 0)
			continue
		}
		norm = appendSprite(norm, p.X, p.Y, p.Size, p.Col, a, 0)
	}
	return norm, glow
}

func appendEnemy(buf []float32, e *game.Enemy) []float32 {
	flash := math.Min(1, e.HitFlash*10)
	col := game.Palette.Enemy.Lerp(game.Palette.EnemyFlash, flash)
	return appendSprite(buf, e.X, e.Y, e.Radius*2, col, 1, 0)
}

// appendPlayer draws the body and a barrel that kicks back with recoil.
// The body blinks while invulnerable.
func appendPlayer(buf []float32, p *game.Player, elapsed float64) []float32 {
	col := game.Palette.Player
	alpha := 1.0
	switch {
	case p.Dashing():
		col = game.Palette.Dash
	case p.Invulnerable > 0:
		col = game.Palette.PlayerHurt
		if int(elapsed*20)%2 == 1 {
			alpha = 0.35
		}
	}
	dx, dy := math.Cos(p.Angle), math.Sin(p.Angle)
	reach := p.Radius + 3 - p.Recoil
	buf = appendSprite(buf, p.X+dx*reach, p.Y+dy*reach, p.Radius*0.7, col.Lerp(game.Palette.Glow, 0.4), alpha, float32(p.Angle))
	return appendSprite(buf, p.X, p.Y, p.Radius*2, col, alpha, float32(p.Angle))
}

func appendDebugRings(buf []float32, snap game.Snapshot) []float32 {
	green := game.RGB{R: 80, G: 255, B: 120}
	red := game.RGB{R: 255, G: 80, B: 80}
	p := &snap.Player
	buf = appendSprite(buf, p.X, p.Y, p.Radius*2, green, 0.9, 0)
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		buf = appendSprite(buf, e.X, e.Y, e.Radius*2, red, 0.9, 0)
	}
	for i := range snap.Bullets {
		b := &snap.Bullets[i]
		buf = appendSprite(buf, b.X, b.Y, b.Radius*2, green, 0.9, 0)
	}
	return buf
}
