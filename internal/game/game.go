// Package game implements the flyover loop shared by every window host.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/stats"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/texture"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Game is one flyover session: a camera over a terrain, drawn into a CPU
// framebuffer each tick.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	camera   *camera.Camera
	renderer *voxel.Renderer
	frame    *framebuffer.Framebuffer
	bindings input.Bindings
	stats    *stats.Frames
	capture  *debug.ScreenshotCapture

	screenshot input.Edge
	reset      input.Edge
}

// New builds a session from cfg. It loads or generates the terrain but does
// not open a window.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}

	g.log.Info("initializing flyover",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	tex, err := LoadTerrain(cfg.Terrain)
	if err != nil {
		return nil, err
	}
	g.log.Info("terrain ready",
		zap.Int("width", tex.Width()),
		zap.Int("rows", tex.Rows()),
	)

	g.renderer, err = voxel.NewRenderer(tex, cfg.RenderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.frame, err = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create framebuffer: %w", err)
	}

	g.bindings, err = input.ParseBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("invalid controls: %w", err)
	}

	g.stats, err = stats.New(logger.Named("stats"))
	if err != nil {
		return nil, err
	}

	g.capture = debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix)
	g.camera = camera.New(cfg.StartPose())

	g.log.Info("flyover initialized")
	return g, nil
}

// LoadTerrain reads the configured height and colour maps, or generates a
// synthetic pair when no paths are set.
func LoadTerrain(cfg config.TerrainConfig) (*terrain.Textures, error) {
	if cfg.HeightMap != "" {
		tex, err := texture.LoadPair(cfg.HeightMap, cfg.ColorMap)
		if err != nil {
			return nil, fmt.Errorf("failed to load terrain: %w", err)
		}
		return tex, nil
	}

	s := cfg.Synthetic
	tex, err := terrain.Generate(terrain.GenerateParams{
		Size:       s.Size,
		Seed:       s.Seed,
		Octaves:    s.Octaves,
		WaterLevel: s.WaterLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate terrain: %w", err)
	}
	return tex, nil
}

// Tick reads one snapshot of held keys, advances the camera and redraws the
// frame. It returns true when the quit action is held.
func (g *Game) Tick(keys input.State) bool {
	if g.bindings.Down(keys, input.ActionQuit) {
		return true
	}

	if g.reset.Pressed(g.bindings.Down(keys, input.ActionReset)) {
		g.camera = camera.New(g.config.StartPose())
		g.log.Info("camera reset")
	}

	done := g.stats.Begin()
	g.renderer.RenderFrame(g.camera, g.bindings.Snapshot(keys), g.frame)
	done()

	if g.screenshot.Pressed(g.bindings.Down(keys, input.ActionScreenshot)) {
		path, err := g.capture.Capture(g.frame)
		if err != nil {
			g.log.Error("screenshot failed", zap.Error(err))
		} else {
			g.log.Info("screenshot saved", zap.String("path", path))
		}
	}
	return false
}

// Frame returns the framebuffer holding the last drawn frame.
func (g *Game) Frame() *framebuffer.Framebuffer {
	return g.frame
}

// Camera returns the current camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// title builds the window title, with the FPS summary when enabled.
func (g *Game) title() string {
	if !g.config.Graphics.ShowFPS {
		return g.config.Graphics.Title
	}
	s := g.stats.Last()
	return fmt.Sprintf("%s - %.0f fps (%.2fms)", g.config.Graphics.Title, s.FPS, float64(s.AvgTime.Microseconds())/1000)
}
