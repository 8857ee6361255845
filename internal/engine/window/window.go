//go:build !ebiten

// Package window presents CPU framebuffers in an SDL2 window and exposes the
// keyboard state to the input bindings.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int // Framebuffer width
	Height     int // Framebuffer height
	Scale      int // Window pixels per framebuffer pixel
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window, renderer and streaming texture.
type Window struct {
	config   Config
	log      *zap.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	keys     keyboard
}

// New creates a window whose streaming texture matches the framebuffer size.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Nearest-neighbour scaling keeps the low-res look crisp.
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width*cfg.Scale),
		int32(cfg.Height*cfg.Scale),
		flags,
	)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rflags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rflags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, rflags)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	if err := w.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		w.log.Warn("failed to set logical size", zap.Error(err))
	}

	// ABGR8888 is R,G,B,A byte order in memory on little-endian hosts,
	// which matches the framebuffer layout.
	w.texture, err = w.renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width),
		int32(cfg.Height),
	)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("scale", cfg.Scale),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Present uploads a finished frame and shows it.
func (w *Window) Present(fb *framebuffer.Framebuffer) error {
	pix := fb.Pix()
	if err := w.texture.Update(nil, unsafe.Pointer(&pix[0]), fb.Stride()); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// PollEvents drains the SDL event queue and refreshes the keyboard snapshot.
// Returns true if the window was asked to close.
func (w *Window) PollEvents() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			quit = true
		}
	}
	w.keys.state = sdl.GetKeyboardState()
	return quit
}

// Keys returns the keyboard state as of the last PollEvents.
func (w *Window) Keys() input.State {
	return &w.keys
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}

	sdl.Quit()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}
