package main

import (
	"fmt"
	"time"

	"brobot/robot"
)

// statusTitle builds the window title shown instead of an on-screen overlay:
// frame rate plus where the robot is and which way it looks.
type statusTitle struct {
	base     string
	interval time.Duration

	frames int
	since  time.Time
}

func newStatusTitle(base string, interval time.Duration) *statusTitle {
	return &statusTitle{base: base, interval: interval}
}

// Frame counts one frame. Once per interval it returns a fresh title.
func (s *statusTitle) Frame(now time.Time, st robot.State) (string, bool) {
	if s.since.IsZero() {
		s.since = now
	}
	s.frames++

	elapsed := now.Sub(s.since)
	if elapsed < s.interval {
		return "", false
	}
	fps := float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.since = now
	return formatStatus(s.base, fps, st), true
}

func formatStatus(base string, fps float64, st robot.State) string {
	mode := "idle"
	switch {
	case st.Greeting:
		mode = "waving"
	case st.Walking:
		mode = "walking"
	}
	return fmt.Sprintf("%s | FPS: %.0f | (%.2f, %.2f) | heading %.0f tilt %.0f | %s",
		base, fps, st.Position.X, st.Position.Z, st.Heading, st.Tilt, mode)
}
