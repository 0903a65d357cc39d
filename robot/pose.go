package robot

import "brobot/math"

// JointAngles are the per-tick joint rotations in degrees.
type JointAngles struct {
	ArmSwing float32
	LegSwing float32 // always -ArmSwing
	Wave     float32 // zero unless greeting
}

// Swing returns the anti-phase arm and leg angles for a walk clock value.
func Swing(animClock, amplitude float32) (arm, leg float32) {
	s := math.Sin(animClock)
	return s * amplitude, -s * amplitude
}

// Wave returns the greeting wave angle for a greeting clock value.
func Wave(greetClock, frequency, amplitude float32) float32 {
	return math.Sin(greetClock*frequency) * amplitude
}

// AdvanceWalk returns the next walk clock: it grows by delta while walking and
// snaps back to zero otherwise.
func AdvanceWalk(clock float32, walking bool, delta float32) float32 {
	if !walking {
		return 0
	}
	return clock + delta
}

// AdvanceGreeting returns the next greeting state. The gesture runs while the
// key is held; once the clock passes duration it ends and rewinds in the same
// tick, and a held key starts it again on the following tick.
func AdvanceGreeting(clock float32, held bool, delta, duration float32) (active bool, next float32) {
	if !held {
		return false, 0
	}
	next = clock + delta
	if next > duration {
		return false, 0
	}
	return true, next
}

// Joints derives the joint angles for s.
func (c Config) Joints(s State) JointAngles {
	arm, leg := Swing(s.AnimClock, c.SwingAmplitude)
	j := JointAngles{ArmSwing: arm, LegSwing: leg}
	if s.Greeting {
		j.Wave = Wave(s.GreetClock, c.WaveFrequency, c.WaveAmplitude)
	}
	return j
}
