// Package input maps host keyboard state to camera intents through
// configurable key bindings.
package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// Action is something a key can be bound to.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionAscend
	ActionDescend
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionScreenshot
	ActionReset
	ActionQuit
	actionCount
)

var actionNames = map[string]Action{
	"forward":      ActionForward,
	"backward":     ActionBackward,
	"strafe_left":  ActionStrafeLeft,
	"strafe_right": ActionStrafeRight,
	"ascend":       ActionAscend,
	"descend":      ActionDescend,
	"yaw_left":     ActionYawLeft,
	"yaw_right":    ActionYawRight,
	"pitch_up":     ActionPitchUp,
	"pitch_down":   ActionPitchDown,
	"screenshot":   ActionScreenshot,
	"reset":        ActionReset,
	"quit":         ActionQuit,
}

// Key is a host-independent key name such as "w", "up" or "f12".
type Key string

// Keys lists every key name a host adapter must understand.
var Keys = []Key{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"up", "down", "left", "right", "pageup", "pagedown", "home", "end",
	"space", "lshift", "rshift", "lctrl", "rctrl", "escape", "enter", "backspace", "f12",
}

var knownKeys = func() map[Key]bool {
	m := make(map[Key]bool, len(Keys))
	for _, k := range Keys {
		m[k] = true
	}
	return m
}()

// Bindings maps each action to the keys that trigger it.
type Bindings [actionCount][]Key

// ParseBindings builds Bindings from the config's action -> key names map.
// Unknown actions or keys are errors so typos surface at startup.
func ParseBindings(m map[string][]string) (Bindings, error) {
	var b Bindings
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := actionNames[name]
		if !ok {
			return b, fmt.Errorf("unknown action %q", name)
		}
		for _, k := range m[name] {
			key := Key(strings.ToLower(k))
			if !knownKeys[key] {
				return b, fmt.Errorf("action %q: unknown key %q", name, k)
			}
			b[action] = append(b[action], key)
		}
	}
	return b, nil
}

// State answers whether a key is held. Hosts implement it over their
// keyboard APIs.
type State interface {
	Down(Key) bool
}

// Down reports whether any key bound to a is held.
func (b *Bindings) Down(s State, a Action) bool {
	for _, k := range b[a] {
		if s.Down(k) {
			return true
		}
	}
	return false
}

// Snapshot reads the ten movement intents for this tick.
func (b *Bindings) Snapshot(s State) camera.Input {
	return camera.Input{
		Forward:     b.Down(s, ActionForward),
		Backward:    b.Down(s, ActionBackward),
		StrafeLeft:  b.Down(s, ActionStrafeLeft),
		StrafeRight: b.Down(s, ActionStrafeRight),
		Ascend:      b.Down(s, ActionAscend),
		Descend:     b.Down(s, ActionDescend),
		YawLeft:     b.Down(s, ActionYawLeft),
		YawRight:    b.Down(s, ActionYawRight),
		PitchUp:     b.Down(s, ActionPitchUp),
		PitchDown:   b.Down(s, ActionPitchDown),
	}
}

// Edge turns a held state into a press that fires once per key-down.
type Edge struct {
	held bool
}

// Pressed reports true only on the tick down becomes true.
func (e *Edge) Pressed(down bool) bool {
	fire := down && !e.held
	e.held = down
	return fire
}
