package robot

import "brobot/math"

// State is everything the figure remembers between ticks. Joint angles and
// transforms are derived from it and never stored.
type State struct {
	Position math.Vec3
	Facing   math.Vec3
	Heading  float32 // degrees about +Y
	Tilt     float32 // degrees, clamped to the configured limit

	Walking   bool
	AnimClock float32 // zero whenever Walking is false

	Greeting   bool
	GreetClock float32 // zero whenever Greeting is false
}

func newState() State {
	return State{Facing: Facing(0)}
}
