package robot

import "brobot/math"

// Facing maps a heading in degrees to a unit direction on the XZ plane.
func Facing(heading float32) math.Vec3 {
	rad := math.Radians(heading)
	return math.Vec3{X: math.Sin(rad), Y: 0, Z: math.Cos(rad)}
}

// Lateral is the strafe-left direction for a facing vector: cross(up, facing).
func Lateral(facing math.Vec3) math.Vec3 {
	return math.Vec3Up.Cross(facing)
}

// Advance moves pos by one tick of intent. There is no acceleration and no
// collision; distance is speed per unit of intent.
func Advance(pos, facing math.Vec3, in Intent, speed float32) math.Vec3 {
	if in.Forward != 0 {
		pos = pos.Add(facing.Mul(in.Forward * speed))
	}
	if in.Strafe != 0 {
		pos = pos.Add(Lateral(facing).Mul(in.Strafe * speed))
	}
	return pos
}
