package robot

import "brobot/math"

// Keys is the state of the bound keys sampled for one tick.
type Keys struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	Greet       bool
}

// Intent is the movement requested for one tick. Forward and Strafe are in
// {-1, 0, 1}; opposite keys cancel but still count as walking.
type Intent struct {
	Forward float32
	Strafe  float32
	Walking bool
}

// Intent derives the movement intent from the sampled keys.
func (k Keys) Intent() Intent {
	return Intent{
		Forward: axis(k.Forward, k.Back),
		Strafe:  axis(k.StrafeLeft, k.StrafeRight),
		Walking: k.Forward || k.Back || k.StrafeLeft || k.StrafeRight,
	}
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

// MouseLook turns absolute cursor positions into heading and tilt changes.
// The first position only sets the baseline so an uninitialised cursor does
// not produce a jump.
type MouseLook struct {
	Sensitivity float32
	TiltLimit   float32

	lastX, lastY float64
	primed       bool
}

// Move applies the delta from the previous cursor position to s.
func (m *MouseLook) Move(s *State, x, y float64) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}

	dx := float32(x - m.lastX)
	dy := float32(m.lastY - y)
	m.lastX, m.lastY = x, y

	s.Heading -= dx * m.Sensitivity
	s.Tilt = math.Clamp(s.Tilt+dy*m.Sensitivity, -m.TiltLimit, m.TiltLimit)
}

// Reset forgets the baseline, e.g. after the cursor was re-captured.
func (m *MouseLook) Reset() {
	m.primed = false
}
