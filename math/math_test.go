package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 0.0001

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func vecApprox(a, b Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}

	// Up x Front points along +X; strafing relies on this
	if got := Vec3Up.Cross(Vec3Front); got != Vec3Right {
		t.Errorf("Cross: expected %v, got %v", Vec3Right, got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	if zero := Vec3Zero.Normalize(); zero != Vec3Zero {
		t.Errorf("Normalize: zero vector changed to %v", zero)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m.Origin() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, m.Origin())
	}

	if got := m.MulPoint(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
}

func TestMat4LocalChain(t *testing.T) {
	// translate then rotate: the rotation happens about the translated origin
	m := Mat4Identity().
		Translate(NewVec3(1, 0, 0)).
		Rotate(Vec3Up, math.Pi/2)

	got := m.MulPoint(NewVec3(0, 0, 1))
	expected := NewVec3(2, 0, 0)
	if !vecApprox(got, expected) {
		t.Errorf("Chain: expected %v, got %v", expected, got)
	}

	// scale is applied first of all
	s := Mat4Identity().Translate(NewVec3(0, 1, 0)).Scale(NewVec3(2, 2, 2))
	got = s.MulPoint(NewVec3(1, 1, 1))
	expected = NewVec3(2, 3, 2)
	if !vecApprox(got, expected) {
		t.Errorf("Chain with scale: expected %v, got %v", expected, got)
	}
}

func TestMat4MatchesColumnMajorReference(t *testing.T) {
	angle := Radians(37)
	m := Mat4Identity().
		Translate(NewVec3(0.6, 0.5, 0)).
		Rotate(Vec3Right, angle).
		Translate(NewVec3(0, -0.5, 0))

	ref := mgl32.Translate3D(0.6, 0.5, 0).
		Mul4(mgl32.HomogRotate3DX(angle)).
		Mul4(mgl32.Translate3D(0, -0.5, 0))

	got := m.Floats()
	for i := range got {
		if !approx(got[i], ref[i]) {
			t.Fatalf("element %d: expected %v, got %v", i, ref[i], got[i])
		}
	}
	if back := Mat4FromFloats(got); back != m {
		t.Errorf("Mat4FromFloats: expected %v, got %v", m, back)
	}
}

func TestMat4Perspective(t *testing.T) {
	fov := Radians(45)
	aspect := float32(1000.0 / 800.0)

	m := Mat4Perspective(fov, aspect, 0.1, 100)
	ref := mgl32.Perspective(fov, aspect, 0.1, 100)

	got := m.Floats()
	for i := range got {
		if !approx(got[i], ref[i]) {
			t.Errorf("element %d: expected %v, got %v", i, ref[i], got[i])
		}
	}
}

func TestAngleHelpers(t *testing.T) {
	if !approx(Radians(180), math.Pi) {
		t.Errorf("Radians: expected pi, got %v", Radians(180))
	}
	if !approx(Sin(Radians(90)), 1) || !approx(Cos(0), 1) {
		t.Error("Sin/Cos: unexpected values")
	}
	if Clamp(50, -45, 45) != 45 || Clamp(-50, -45, 45) != -45 || Clamp(10, -45, 45) != 10 {
		t.Error("Clamp: value not restricted")
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
