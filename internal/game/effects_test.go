package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddShakeIsBounded(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 200; i++ {
		var e Effects
		e.AddShake(r, 4)
		assert.LessOrEqual(t, math.Abs(e.ShakeX), 4.0)
		assert.LessOrEqual(t, math.Abs(e.ShakeY), 4.0)
	}

	var e Effects
	e.AddShake(r, 0)
	assert.Zero(t, e.ShakeX)
}

func TestDecayShake(t *testing.T) {
	e := Effects{ShakeX: 10, ShakeY: -10}
	e.DecayShake(0.9)
	assert.InDelta(t, 9, e.ShakeX, 1e-9)
	assert.InDelta(t, -9, e.ShakeY, 1e-9)

	for i := 0; i < 200; i++ {
		e.DecayShake(0.9)
	}
	assert.Zero(t, e.ShakeX)
	assert.Zero(t, e.ShakeY)
}

func TestHitStopKeepsLongest(t *testing.T) {
	var e Effects
	e.AddHitStop(0.08)
	e.AddHitStop(0.03)
	assert.Equal(t, 0.08, e.HitStop)
	e.AddHitStop(0.1)
	assert.Equal(t, 0.1, e.HitStop)
}

func TestTickHitStop(t *testing.T) {
	e := Effects{HitStop: 0.03}
	assert.True(t, e.TickHitStop(0.02))
	assert.True(t, e.TickHitStop(0.02), "the tick that drains the freeze is still frozen")
	assert.Zero(t, e.HitStop)
	assert.False(t, e.TickHitStop(0.02))
}
