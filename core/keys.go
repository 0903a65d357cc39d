package core

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeySpace  = int(glfw.KeySpace)
	Key0      = int(glfw.Key0)
	KeyA      = int(glfw.KeyA)
	KeyD      = int(glfw.KeyD)
	KeyH      = int(glfw.KeyH)
	KeyP      = int(glfw.KeyP)
	KeyS      = int(glfw.KeyS)
	KeyW      = int(glfw.KeyW)
	KeyEscape = int(glfw.KeyEscape)
	KeyEnter  = int(glfw.KeyEnter)
	KeyTab    = int(glfw.KeyTab)
	KeyRight  = int(glfw.KeyRight)
	KeyLeft   = int(glfw.KeyLeft)
	KeyDown   = int(glfw.KeyDown)
	KeyUp     = int(glfw.KeyUp)
	KeyF12    = int(glfw.KeyF12)
)

var namedKeys = map[string]int{
	"space":  KeySpace,
	"escape": KeyEscape,
	"enter":  KeyEnter,
	"tab":    KeyTab,
	"right":  KeyRight,
	"left":   KeyLeft,
	"down":   KeyDown,
	"up":     KeyUp,
	"f12":    KeyF12,
}

// KeyByName resolves a binding name: a single letter or digit ("W", "7") or
// one of space, escape, enter, tab, up, down, left, right, f12. Matching is
// case-insensitive.
func KeyByName(name string) (int, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return int(glfw.KeyA) + int(c-'a'), true
		case c >= '0' && c <= '9':
			return int(glfw.Key0) + int(c-'0'), true
		}
	}
	key, ok := namedKeys[n]
	return key, ok
}
