package robot

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"brobot/math"
)

func TestFacingIsUnitOnXZ(t *testing.T) {
	for h := float32(-720); h <= 720; h += 7.5 {
		d := Facing(h)
		assert.Zero(t, d.Y)
		length := stdmath.Hypot(float64(d.X), float64(d.Z))
		assert.InDelta(t, 1.0, length, 1e-6, "heading %v", h)
	}
}

func TestFacingZeroHeading(t *testing.T) {
	d := Facing(0)
	assert.Equal(t, math.NewVec3(0, 0, 1), d)
}

func TestAdvance(t *testing.T) {
	const speed = float32(0.0005)
	facing := Facing(0)

	t.Run("forward moves along facing", func(t *testing.T) {
		pos := Advance(math.Vec3Zero, facing, Intent{Forward: 1, Walking: true}, speed)
		assert.Equal(t, math.NewVec3(0, 0, speed), pos)
	})

	t.Run("back moves against facing", func(t *testing.T) {
		pos := Advance(math.Vec3Zero, facing, Intent{Forward: -1, Walking: true}, speed)
		assert.Equal(t, math.NewVec3(0, 0, -speed), pos)
	})

	t.Run("strafe left follows up cross facing", func(t *testing.T) {
		pos := Advance(math.Vec3Zero, facing, Intent{Strafe: 1, Walking: true}, speed)
		assert.Equal(t, math.NewVec3(speed, 0, 0), pos)
	})

	t.Run("strafe right is the mirror", func(t *testing.T) {
		pos := Advance(math.Vec3Zero, facing, Intent{Strafe: -1, Walking: true}, speed)
		assert.Equal(t, math.NewVec3(-speed, 0, 0), pos)
	})

	t.Run("lateral stays perpendicular", func(t *testing.T) {
		for h := float32(0); h < 360; h += 15 {
			f := Facing(h)
			assert.InDelta(t, 0, float64(Lateral(f).Dot(f)), 1e-6)
		}
	})
}
