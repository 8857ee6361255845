//go:build ebiten

package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/voxelspace/internal/engine/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"space":     ebiten.KeySpace,
	"lshift":    ebiten.KeyShiftLeft,
	"rshift":    ebiten.KeyShiftRight,
	"lctrl":     ebiten.KeyControlLeft,
	"rctrl":     ebiten.KeyControlRight,
	"escape":    ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"backspace": ebiten.KeyBackspace,
	"f12":       ebiten.KeyF12,
}

// keyboard adapts ebiten's polled key state to input.State.
type keyboard struct{}

func (keyboard) Down(k input.Key) bool {
	key, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(key)
}

// host adapts a Game to the ebiten.Game interface.
type host struct {
	game *Game
	tick int
}

// Update advances the flyover by one tick.
func (h *host) Update() error {
	if h.game.Tick(keyboard{}) {
		return ebiten.Termination
	}
	h.tick++
	if h.game.config.Graphics.ShowFPS && h.tick%ebiten.TPS() == 0 {
		ebiten.SetWindowTitle(h.game.title())
	}
	return nil
}

// Draw copies the last frame to the screen.
func (h *host) Draw(screen *ebiten.Image) {
	screen.WritePixels(h.game.frame.Pix())
}

// Layout returns the logical screen size.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.game.frame.Width(), h.game.frame.Height()
}

// Run opens an ebiten window and runs the loop until quit.
func (g *Game) Run() error {
	gc := g.config.Graphics
	ebiten.SetWindowTitle(gc.Title)
	ebiten.SetWindowSize(gc.Width*gc.WindowScale, gc.Height*gc.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gc.Fullscreen)
	ebiten.SetVsyncEnabled(gc.VSync)
	if gc.FPSLimit > 0 {
		ebiten.SetTPS(gc.FPSLimit)
	}

	g.log.Info("starting flyover loop (ebiten)")
	if err := ebiten.RunGame(&host{game: g}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.log.Info("flyover loop stopped")
	return nil
}

// Close releases session resources.
func (g *Game) Close() {
	g.log.Info("closing flyover")
}
