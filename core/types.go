package core

import (
	"brobot/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	// ColorField is the green backdrop behind the robot.
	ColorField = Color{0, 0.6, 0, 1}
)

// Vertex is the layout uploaded to the GPU: position then texture coordinate.
type Vertex struct {
	Position math.Vec3
	UV       math.Vec2
}
