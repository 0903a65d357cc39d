package robot

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brobot/math"
)

func TestRobotDefaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	r := New(DefaultConfig())
	s := r.State()
	assert.Equal(t, math.Vec3Zero, s.Position)
	assert.Equal(t, Facing(0), s.Facing)
	assert.False(t, s.Walking)
	assert.False(t, s.Greeting)
	assert.Len(t, r.Pose(), len(r.Skeleton()))
}

func TestRobotWalkForward(t *testing.T) {
	cfg := DefaultConfig()
	r := New(cfg)

	for i := 1; i <= 3; i++ {
		r.Tick(Keys{Forward: true}, 1)
		s := r.State()
		assert.Equal(t, math.NewVec3(0, 0, 1), s.Facing)
		assert.InDelta(t, float64(cfg.Speed)*float64(i), float64(s.Position.Z), 1e-7)
		assert.Zero(t, s.Position.X)
		assert.True(t, s.Walking)
		assert.InDelta(t, float64(cfg.WalkRate)*float64(i), float64(s.AnimClock), 1e-7)
	}
}

func TestRobotStopResetsWalkCycle(t *testing.T) {
	r := New(DefaultConfig())
	for i := 0; i < 500; i++ {
		r.Tick(Keys{StrafeLeft: true}, 1)
	}
	require.NotZero(t, r.Joints().ArmSwing)

	r.Tick(Keys{}, 1)
	s := r.State()
	assert.False(t, s.Walking)
	assert.Equal(t, float32(0), s.AnimClock)

	j := r.Joints()
	assert.Zero(t, j.ArmSwing)
	assert.Zero(t, j.LegSwing)
}

func TestRobotHeadingFollowsCursor(t *testing.T) {
	r := New(DefaultConfig())
	r.OnCursor(500, 400)
	r.OnCursor(50, 400) // dx = -450 -> heading += 90

	r.Tick(Keys{Forward: true}, 1)
	s := r.State()
	assert.InDelta(t, 90, float64(s.Heading), 1e-4)
	assert.InDelta(t, 1, float64(s.Facing.X), 1e-6)
	assert.InDelta(t, 0, float64(s.Facing.Z), 1e-6)
	assert.Greater(t, s.Position.X, float32(0))
}

func TestRobotGreeting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GreetRate = 0.5
	r := New(cfg)

	t.Run("clock never exceeds the duration", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			r.Tick(Keys{Greet: true}, 1)
			s := r.State()
			assert.LessOrEqual(t, s.GreetClock, cfg.GreetDuration)
			if !s.Greeting {
				assert.Zero(t, s.GreetClock)
			}
		}
	})

	t.Run("overflow ends the gesture and a held key restarts it", func(t *testing.T) {
		r := New(cfg)
		for i := 0; i < 4; i++ {
			r.Tick(Keys{Greet: true}, 1)
		}
		require.True(t, r.State().Greeting)
		require.Equal(t, float32(2), r.State().GreetClock)

		r.Tick(Keys{Greet: true}, 1)
		assert.False(t, r.State().Greeting)
		assert.Zero(t, r.State().GreetClock)

		r.Tick(Keys{Greet: true}, 1)
		assert.True(t, r.State().Greeting)
		assert.Equal(t, float32(0.5), r.State().GreetClock)
	})

	t.Run("release resets immediately", func(t *testing.T) {
		r := New(cfg)
		r.Tick(Keys{Greet: true}, 1)
		r.Tick(Keys{Greet: true}, 1)
		r.Tick(Keys{}, 1)
		assert.False(t, r.State().Greeting)
		assert.Zero(t, r.State().GreetClock)
	})

	t.Run("greeting and walking run independently", func(t *testing.T) {
		r := New(cfg)
		r.Tick(Keys{Greet: true, Forward: true}, 1)
		s := r.State()
		assert.True(t, s.Greeting)
		assert.True(t, s.Walking)
		assert.Equal(t, cfg.WalkRate, s.AnimClock)
		assert.Equal(t, float32(0.5), s.GreetClock)
	})
}

func TestRobotGreetingPose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GreetRate = stdmath.Pi / 4
	r := New(cfg)

	r.Tick(Keys{Greet: true}, 1)
	require.True(t, r.State().Greeting)
	assert.InDelta(t, 15, float64(r.Joints().Wave), 1e-4)

	arm, ok := Find(r.Pose(), "right_arm")
	require.True(t, ok)
	// raised arm: the hand end points up past the shoulder
	hand := arm.Mesh().MulPoint(math.NewVec3(0, -0.5, 0))
	assert.Greater(t, hand.Y, cfg.Body.Shoulder.Y)
}

func TestRobotElapsedStepScalesRates(t *testing.T) {
	cfg := DefaultConfig()
	r := New(cfg)
	r.Tick(Keys{Back: true}, 10)
	s := r.State()
	assert.InDelta(t, -float64(cfg.Speed)*10, float64(s.Position.Z), 1e-7)
	assert.InDelta(t, float64(cfg.WalkRate)*10, float64(s.AnimClock), 1e-7)
}

func TestConfigValidate(t *testing.T) {
	bad := DefaultConfig()
	bad.GreetDuration = 0
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Speed = -1
	assert.Error(t, bad.Validate())

	bad = DefaultConfig()
	bad.Timing.Mode = "sometimes"
	assert.Error(t, bad.Validate())
}
