//go:build !ebiten

package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/window"
)

// Run opens an SDL2 window and runs the loop until quit.
func (g *Game) Run() error {
	gc := g.config.Graphics
	win, err := window.New(window.Config{
		Title:      gc.Title,
		Width:      gc.Width,
		Height:     gc.Height,
		Scale:      gc.WindowScale,
		Fullscreen: gc.Fullscreen,
		VSync:      gc.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	var frameBudget time.Duration
	if gc.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(gc.FPSLimit)
	}
	titleTimer := time.Now()

	g.log.Info("starting flyover loop", zap.Duration("frame_budget", frameBudget))

	for {
		start := time.Now()

		// 1. Process input
		if win.PollEvents() {
			break
		}

		// 2. Update and draw
		if g.Tick(win.Keys()) {
			break
		}

		// 3. Present
		if err := win.Present(g.frame); err != nil {
			return fmt.Errorf("present error: %w", err)
		}

		if gc.ShowFPS && time.Since(titleTimer) >= time.Second {
			win.SetTitle(g.title())
			titleTimer = time.Now()
		}

		if frameBudget > 0 {
			if spare := frameBudget - time.Since(start); spare > 0 {
				time.Sleep(spare)
			}
		}
	}

	g.log.Info("flyover loop stopped")
	return nil
}

// Close releases session resources.
func (g *Game) Close() {
	g.log.Info("closing flyover")
}
