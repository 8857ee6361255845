package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the FPS counter")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Framebuffer width")
	flagHeight     = flag.Int("height", 0, "Framebuffer height")
	flagScale      = flag.Int("scale", 0, "Window scale factor")
	flagHeightMap  = flag.String("heightmap", "", "Height map image")
	flagColorMap   = flag.String("colormap", "", "Color map image")
	flagSeed       = flag.Int64("seed", 0, "Synthetic terrain seed")
	flagWriteCfg   = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, if any.
func WriteConfigPath() string {
	return *flagWriteCfg
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagScale > 0 {
		cfg.Graphics.WindowScale = *flagScale
	}
	if *flagHeightMap != "" {
		cfg.Terrain.HeightMap = *flagHeightMap
	}
	if *flagColorMap != "" {
		cfg.Terrain.ColorMap = *flagColorMap
	}
	if *flagSeed != 0 {
		cfg.Terrain.Synthetic.Seed = *flagSeed
	}
}
