package math

import "math"

// Mat4 is a 4x4 matrix applied to row vectors (v * M). Translation lives in
// row 3. Its memory layout is the column-major layout OpenGL expects, so it
// can be uploaded with transpose=false.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// MulPoint transforms a point (w = 1).
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return v.ToVec4(1).MulMat(m).ToVec3()
}

// Origin returns the translation part of m.
func (m Mat4) Origin() Vec3 {
	return Vec3{X: m[3][0], Y: m[3][1], Z: m[3][2]}
}

// Translate applies a translation in m's local space, the way
// glm::translate(m, v) does: the translation happens before m.
func (m Mat4) Translate(v Vec3) Mat4 {
	return Mat4Translation(v).Mul(m)
}

// Rotate applies a local rotation of angle radians about axis.
func (m Mat4) Rotate(axis Vec3, angle float32) Mat4 {
	return Mat4RotationAxis(axis, angle).Mul(m)
}

// Scale applies a local scale.
func (m Mat4) Scale(v Vec3) Mat4 {
	return Mat4Scale(v).Mul(m)
}

// Floats returns the matrix as 16 column-major values.
func (m Mat4) Floats() [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[i][j]
		}
	}
	return out
}

// Mat4FromFloats is the inverse of Floats.
func Mat4FromFloats(f [16]float32) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = f[i*4+j]
		}
	}
	return m
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationAxis(axis Vec3, angle float32) Mat4 {
	axis = axis.Normalize()
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c

	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		{t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0},
		{t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0},
		{t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	tanHalfFovy := float32(math.Tan(float64(fovY) / 2))

	var m Mat4
	m[0][0] = 1 / (aspect * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}
