package robot

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwing(t *testing.T) {
	t.Run("quarter period", func(t *testing.T) {
		arm, leg := Swing(stdmath.Pi/2, 30)
		assert.InDelta(t, 30, float64(arm), 1e-4)
		assert.InDelta(t, -30, float64(leg), 1e-4)
	})

	t.Run("rest pose", func(t *testing.T) {
		arm, leg := Swing(0, 30)
		assert.Zero(t, arm)
		assert.Zero(t, leg)
	})

	t.Run("anti-phase", func(t *testing.T) {
		for c := float32(0); c < 20; c += 0.37 {
			arm, leg := Swing(c, 30)
			assert.Equal(t, arm, -leg, "clock %v", c)
		}
	})
}

func TestWave(t *testing.T) {
	assert.Zero(t, Wave(0, 2, 15))
	assert.InDelta(t, 15, float64(Wave(stdmath.Pi/4, 2, 15)), 1e-4)
}

func TestAdvanceWalk(t *testing.T) {
	assert.Equal(t, float32(0.5), AdvanceWalk(0.25, true, 0.25))
	assert.Zero(t, AdvanceWalk(12.5, false, 0.25))
}

func TestAdvanceGreeting(t *testing.T) {
	t.Run("runs while held", func(t *testing.T) {
		active, clock := AdvanceGreeting(0, true, 0.5, 2)
		assert.True(t, active)
		assert.Equal(t, float32(0.5), clock)
	})

	t.Run("reaching the limit is still active", func(t *testing.T) {
		active, clock := AdvanceGreeting(1.5, true, 0.5, 2)
		assert.True(t, active)
		assert.Equal(t, float32(2), clock)
	})

	t.Run("passing the limit ends and rewinds in one tick", func(t *testing.T) {
		active, clock := AdvanceGreeting(2, true, 0.5, 2)
		assert.False(t, active)
		assert.Zero(t, clock)
	})

	t.Run("release ends immediately", func(t *testing.T) {
		active, clock := AdvanceGreeting(1.9, false, 0.5, 2)
		assert.False(t, active)
		assert.Zero(t, clock)
	})
}

func TestConfigJoints(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("walk only", func(t *testing.T) {
		j := cfg.Joints(State{AnimClock: stdmath.Pi / 2})
		assert.InDelta(t, 30, float64(j.ArmSwing), 1e-4)
		assert.InDelta(t, -30, float64(j.LegSwing), 1e-4)
		assert.Zero(t, j.Wave)
	})

	t.Run("greeting wave", func(t *testing.T) {
		j := cfg.Joints(State{Greeting: true, GreetClock: stdmath.Pi / 4})
		assert.InDelta(t, 15, float64(j.Wave), 1e-4)
	})

	t.Run("wave ignored when not greeting", func(t *testing.T) {
		j := cfg.Joints(State{GreetClock: stdmath.Pi / 4})
		assert.Zero(t, j.Wave)
	})
}
