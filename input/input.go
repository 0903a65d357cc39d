// Package input polls the window for the bound keys once per frame and turns
// them into the robot's per-tick key snapshot.
package input

import "brobot/robot"

// KeyPoller reports whether a key is currently held. *core.Window satisfies it.
type KeyPoller interface {
	IsKeyPressed(key int) bool
}

// Action is something a key can be bound to.
type Action int

const (
	Forward Action = iota
	Back
	StrafeLeft
	StrafeRight
	Greet
	Snapshot
	Quit
	actionCount
)

var actionNames = [actionCount]string{
	"forward", "back", "strafe_left", "strafe_right", "greet", "snapshot", "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every bindable action.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Bindings maps each action to a key code. A negative code leaves the action
// unbound.
type Bindings [actionCount]int

// Manager tracks bound key state across frames.
type Manager struct {
	poller   KeyPoller
	bindings Bindings

	down     [actionCount]bool
	downPrev [actionCount]bool
}

func NewManager(poller KeyPoller, bindings Bindings) *Manager {
	return &Manager{poller: poller, bindings: bindings}
}

// Update should be called once per frame, after events were polled.
func (m *Manager) Update() {
	copy(m.downPrev[:], m.down[:])
	for a, key := range m.bindings {
		m.down[a] = key >= 0 && m.poller.IsKeyPressed(key)
	}
}

// Down reports whether the action's key is held this frame.
func (m *Manager) Down(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return m.down[a]
}

// Pressed reports whether the action's key went down this frame.
func (m *Manager) Pressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return m.down[a] && !m.downPrev[a]
}

// Keys returns the movement and greeting snapshot for this frame.
func (m *Manager) Keys() robot.Keys {
	return robot.Keys{
		Forward:     m.down[Forward],
		Back:        m.down[Back],
		StrafeLeft:  m.down[StrafeLeft],
		StrafeRight: m.down[StrafeRight],
		Greet:       m.down[Greet],
	}
}
