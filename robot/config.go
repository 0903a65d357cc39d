package robot

import (
	"fmt"

	"brobot/math"
)

// BodyConfig holds the fixed proportions of the figure. Joint offsets are
// given for the right side; the left side mirrors X.
type BodyConfig struct {
	HeadOffset math.Vec3 `yaml:"head_offset"`
	HeadScale  math.Vec3 `yaml:"head_scale"`
	TorsoScale math.Vec3 `yaml:"torso_scale"`
	Shoulder   math.Vec3 `yaml:"shoulder"`
	Hip        math.Vec3 `yaml:"hip"`
	LimbPivot  math.Vec3 `yaml:"limb_pivot"`
	ArmScale   math.Vec3 `yaml:"arm_scale"`
	LegScale   math.Vec3 `yaml:"leg_scale"`
}

// Config collects every tunable of the animation core. All rates are per
// tick; angles are degrees.
type Config struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	TiltLimit   float32 `yaml:"tilt_limit"`

	WalkRate       float32 `yaml:"walk_rate"`
	SwingAmplitude float32 `yaml:"swing_amplitude"`

	GreetRate     float32 `yaml:"greet_rate"`
	GreetDuration float32 `yaml:"greet_duration"`
	GreetRaise    float32 `yaml:"greet_raise"`
	WaveAmplitude float32 `yaml:"wave_amplitude"`
	WaveFrequency float32 `yaml:"wave_frequency"`

	Timing TimingConfig `yaml:"timing"`
	Body   BodyConfig   `yaml:"body"`
}

// DefaultBodyConfig returns the proportions of the stock figure.
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		HeadOffset: math.NewVec3(0, 1, 0),
		HeadScale:  math.Splat(0.5),
		TorsoScale: math.NewVec3(1, 1.5, 0.5),
		Shoulder:   math.NewVec3(0.6, 0.5, 0),
		Hip:        math.NewVec3(0.3, -0.5, 0),
		LimbPivot:  math.NewVec3(0, -0.5, 0),
		ArmScale:   math.NewVec3(0.2, 1, 0.2),
		LegScale:   math.NewVec3(0.3, 1, 0.3),
	}
}

// DefaultConfig returns the stock tuning.
//
// WalkRate is 0.0015 and GreetRate 0.0011 because the walk clock and the
// greeting clock each advance in two steps per frame (0.001+0.0005 and
// 0.0001+0.001).
func DefaultConfig() Config {
	return Config{
		Speed:          0.0005,
		Sensitivity:    0.2,
		TiltLimit:      45,
		WalkRate:       0.0015,
		SwingAmplitude: 30,
		GreetRate:      0.0011,
		GreetDuration:  2.0,
		GreetRaise:     -160,
		WaveAmplitude:  15,
		WaveFrequency:  2,
		Timing:         DefaultTimingConfig(),
		Body:           DefaultBodyConfig(),
	}
}

// Validate reports settings that would break the state invariants.
func (c Config) Validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("speed must not be negative, got %v", c.Speed)
	case c.Sensitivity < 0:
		return fmt.Errorf("sensitivity must not be negative, got %v", c.Sensitivity)
	case c.TiltLimit < 0:
		return fmt.Errorf("tilt_limit must not be negative, got %v", c.TiltLimit)
	case c.WalkRate < 0 || c.GreetRate < 0:
		return fmt.Errorf("clock rates must not be negative (walk %v, greet %v)", c.WalkRate, c.GreetRate)
	case c.GreetDuration <= 0:
		return fmt.Errorf("greet_duration must be positive, got %v", c.GreetDuration)
	}
	return c.Timing.Validate()
}
