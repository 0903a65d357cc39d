// Package robot holds the animation core of the figure: input intent,
// locomotion, the walk and greeting clocks, and composition of the fixed
// part hierarchy into model matrices. It has no rendering dependencies.
package robot

// Robot owns the figure's state. It is not safe for concurrent use; the
// render loop is its only user.
type Robot struct {
	cfg      Config
	state    State
	look     MouseLook
	skeleton Skeleton
}

func New(cfg Config) *Robot {
	return &Robot{
		cfg:   cfg,
		state: newState(),
		look: MouseLook{
			Sensitivity: cfg.Sensitivity,
			TiltLimit:   cfg.TiltLimit,
		},
		skeleton: NewSkeleton(cfg.Body, cfg.GreetRaise),
	}
}

// OnCursor feeds an absolute cursor position from the window.
func (r *Robot) OnCursor(x, y float64) {
	r.look.Move(&r.state, x, y)
}

// Tick advances the figure by step ticks (1 in fixed timing).
func (r *Robot) Tick(keys Keys, step float32) {
	s := &r.state
	in := keys.Intent()

	s.Facing = Facing(s.Heading)
	s.Position = Advance(s.Position, s.Facing, in, r.cfg.Speed*step)

	s.Walking = in.Walking
	s.AnimClock = AdvanceWalk(s.AnimClock, s.Walking, r.cfg.WalkRate*step)
	s.Greeting, s.GreetClock = AdvanceGreeting(s.GreetClock, keys.Greet, r.cfg.GreetRate*step, r.cfg.GreetDuration)
}

// State returns a copy of the current state.
func (r *Robot) State() State {
	return r.state
}

// Joints returns the joint angles for the current state.
func (r *Robot) Joints() JointAngles {
	return r.cfg.Joints(r.state)
}

// Pose composes every part for the current state.
func (r *Robot) Pose() []PartTransform {
	root := RootTransform(r.state.Position, r.state.Heading)
	return r.skeleton.Compose(root, r.Joints(), r.state.Greeting)
}

// Skeleton exposes the part list, e.g. for exporters.
func (r *Robot) Skeleton() Skeleton {
	return r.skeleton
}
