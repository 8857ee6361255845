//go:build !ebiten

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

var scancodes = map[input.Key]sdl.Scancode{
	"up":        sdl.SCANCODE_UP,
	"down":      sdl.SCANCODE_DOWN,
	"left":      sdl.SCANCODE_LEFT,
	"right":     sdl.SCANCODE_RIGHT,
	"pageup":    sdl.SCANCODE_PAGEUP,
	"pagedown":  sdl.SCANCODE_PAGEDOWN,
	"home":      sdl.SCANCODE_HOME,
	"end":       sdl.SCANCODE_END,
	"space":     sdl.SCANCODE_SPACE,
	"lshift":    sdl.SCANCODE_LSHIFT,
	"rshift":    sdl.SCANCODE_RSHIFT,
	"lctrl":     sdl.SCANCODE_LCTRL,
	"rctrl":     sdl.SCANCODE_RCTRL,
	"escape":    sdl.SCANCODE_ESCAPE,
	"enter":     sdl.SCANCODE_RETURN,
	"backspace": sdl.SCANCODE_BACKSPACE,
	"f12":       sdl.SCANCODE_F12,
}

func init() {
	// SDL scancodes for letters are contiguous from A.
	for c := 'a'; c <= 'z'; c++ {
		scancodes[input.Key(string(c))] = sdl.SCANCODE_A + sdl.Scancode(c-'a')
	}
}

// keyboard adapts SDL's keyboard state array to input.State.
type keyboard struct {
	state []uint8
}

// Down reports whether k is held.
func (k *keyboard) Down(key input.Key) bool {
	sc, ok := scancodes[key]
	if !ok || int(sc) >= len(k.state) {
		return false
	}
	return k.state[sc] != 0
}
