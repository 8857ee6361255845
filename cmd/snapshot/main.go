// Command snapshot renders a flyover frame without a window and writes it as
// a PNG. An optional input script drives the camera before the capture.
//
//	snapshot -out frame.png -script "f:60,f>:30,-:20"
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/game"
	"github.com/Faultbox/voxelspace/internal/logger"
)

var (
	outPath = flag.String("out", "snapshot.png", "Output PNG path")
	script  = flag.String("script", "", "Input script, e.g. f:60,f>:30,-:20")
)

func main() {
	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.FileConfig()); err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Named("snapshot")

	steps, err := input.ParseScript(*script)
	if err != nil {
		return err
	}

	tex, err := game.LoadTerrain(cfg.Terrain)
	if err != nil {
		return err
	}
	r, err := voxel.NewRenderer(tex, cfg.RenderOptions())
	if err != nil {
		return err
	}
	fb, err := framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return err
	}

	cam := camera.New(cfg.StartPose())
	start := time.Now()
	ticks := 0

	// A frame is always drawn, even for an empty script.
	r.RenderFrame(cam, camera.Input{}, fb)
	for _, s := range steps {
		for i := 0; i < s.Ticks; i++ {
			r.RenderFrame(cam, s.Input, fb)
			ticks++
		}
	}

	if err := debug.WritePNG(*outPath, fb.Image()); err != nil {
		return err
	}

	log.Info("snapshot written",
		zap.String("path", *outPath),
		zap.Int("ticks", ticks),
		zap.Float64("x", cam.X),
		zap.Float64("y", cam.Y),
		zap.Float64("angle", cam.Angle),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
