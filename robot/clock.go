package robot

import (
	"fmt"
	"time"
)

// TimingMode selects how far the clocks advance per rendered frame.
type TimingMode string

const (
	// TimingFixed advances every clock by its per-tick rate once per frame,
	// so animation speed follows the frame rate.
	TimingFixed TimingMode = "fixed"
	// TimingElapsed scales the per-tick rates by wall time.
	TimingElapsed TimingMode = "elapsed"
)

type TimingConfig struct {
	Mode     TimingMode `yaml:"mode"`
	TickRate float32    `yaml:"tick_rate"` // ticks per second in elapsed mode
	MaxStep  float32    `yaml:"max_step"`  // cap in ticks for one frame
}

func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Mode:     TimingFixed,
		TickRate: 1000,
		MaxStep:  100,
	}
}

func (t TimingConfig) Validate() error {
	switch t.Mode {
	case TimingFixed, TimingElapsed:
	default:
		return fmt.Errorf("unknown timing mode %q", t.Mode)
	}
	if t.Mode == TimingElapsed && (t.TickRate <= 0 || t.MaxStep <= 0) {
		return fmt.Errorf("elapsed timing needs positive tick_rate and max_step")
	}
	return nil
}

// Clock produces the per-frame step multiplier passed to Robot.Tick.
type Clock struct {
	cfg  TimingConfig
	last time.Time
}

func NewClock(cfg TimingConfig) *Clock {
	return &Clock{cfg: cfg}
}

// Step returns the multiplier for a frame starting now.
func (c *Clock) Step() float32 {
	return c.StepAt(time.Now())
}

// StepAt is Step with an explicit timestamp. The first elapsed-mode frame
// counts as a single tick.
func (c *Clock) StepAt(now time.Time) float32 {
	if c.cfg.Mode != TimingElapsed {
		return 1
	}
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	dt := float32(now.Sub(c.last).Seconds())
	c.last = now

	step := dt * c.cfg.TickRate
	if step < 0 {
		return 0
	}
	if step > c.cfg.MaxStep {
		return c.cfg.MaxStep
	}
	return step
}
