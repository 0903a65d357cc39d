package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"brobot/math"
	"brobot/robot"
)

func TestStatusTitleInterval(t *testing.T) {
	s := newStatusTitle("BroBot", time.Second)
	start := time.Unix(100, 0)
	st := robot.State{Position: math.NewVec3(1, 0, -2), Heading: 90, Tilt: -10, Walking: true}

	for i := 0; i < 59; i++ {
		_, ok := s.Frame(start.Add(time.Duration(i)*time.Second/60), st)
		assert.False(t, ok)
	}
	title, ok := s.Frame(start.Add(time.Second), st)
	assert.True(t, ok)
	assert.Equal(t, "BroBot | FPS: 60 | (1.00, -2.00) | heading 90 tilt -10 | walking", title)

	_, ok = s.Frame(start.Add(time.Second+time.Millisecond), st)
	assert.False(t, ok)
}

func TestFormatStatusModes(t *testing.T) {
	assert.Contains(t, formatStatus("b", 1, robot.State{}), "| idle")
	assert.Contains(t, formatStatus("b", 1, robot.State{Walking: true, Greeting: true}), "| waving")
}
