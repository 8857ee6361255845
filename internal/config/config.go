// Package config handles flyover configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/logger"
	vmath "github.com/Faultbox/voxelspace/pkg/math"
)

// ErrInvalid is returned by Validate for settings that cannot drive a session.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all flyover settings.
type Config struct {
	Graphics GraphicsConfig      `yaml:"graphics"`
	Terrain  TerrainConfig       `yaml:"terrain"`
	Camera   CameraConfig        `yaml:"camera"`
	Render   RenderConfig        `yaml:"render"`
	Motion   camera.Motion       `yaml:"motion"`
	Controls map[string][]string `yaml:"controls"`
	Capture  CaptureConfig       `yaml:"capture"`
	Logging  LoggingConfig       `yaml:"logging"`
}

// GraphicsConfig holds display settings. Width and Height are the
// framebuffer resolution; the window is WindowScale times larger.
type GraphicsConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	WindowScale int    `yaml:"window_scale"`
	Fullscreen  bool   `yaml:"fullscreen"`
	VSync       bool   `yaml:"vsync"`
	FPSLimit    int    `yaml:"fps_limit"`
	ShowFPS     bool   `yaml:"show_fps"`
}

// TerrainConfig selects the height and colour maps. When both paths are
// empty a synthetic map is generated instead.
type TerrainConfig struct {
	HeightMap string          `yaml:"height_map"`
	ColorMap  string          `yaml:"color_map"`
	Synthetic SyntheticConfig `yaml:"synthetic"`
}

// SyntheticConfig mirrors terrain.GenerateParams.
type SyntheticConfig struct {
	Size       int   `yaml:"size"`
	Seed       int64 `yaml:"seed"`
	Octaves    int   `yaml:"octaves"`
	WaterLevel int   `yaml:"water_level"`
}

// CameraConfig is the starting pose.
type CameraConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Altitude float64 `yaml:"altitude"`
	Angle    float64 `yaml:"angle"`
	Horizon  float64 `yaml:"horizon"`
	ZFar     float64 `yaml:"z_far"`
}

// RenderConfig holds renderer tunables.
type RenderConfig struct {
	Scale     float64  `yaml:"scale"`
	SkyColor  [4]uint8 `yaml:"sky_color"`
	EarlyExit bool     `yaml:"early_exit"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// FileConfig converts the logging section for logger.Init.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	logFile := logger.DefaultFileConfig("")
	return &Config{
		Graphics: GraphicsConfig{
			Title:       "Voxel Space",
			Width:       320,
			Height:      200,
			WindowScale: 3,
			Fullscreen:  false,
			VSync:       true,
			FPSLimit:    60,
			ShowFPS:     false,
		},
		Terrain: TerrainConfig{
			Synthetic: SyntheticConfig{
				Size:       1024,
				Seed:       1,
				Octaves:    6,
				WaterLevel: 70,
			},
		},
		Camera: CameraConfig{
			X:        512,
			Y:        512,
			Altitude: 150,
			Angle:    1.5 * math.Pi,
			Horizon:  50,
			ZFar:     400,
		},
		Render: RenderConfig{
			Scale:     120,
			SkyColor:  [4]uint8{135, 206, 235, 255},
			EarlyExit: true,
		},
		Motion:   camera.DefaultMotion(),
		Controls: DefaultControls(),
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "voxelspace",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    logFile.Path,
			MaxSizeMB:  logFile.MaxSizeMB,
			MaxBackups: logFile.MaxBackups,
			MaxAgeDays: logFile.MaxAgeDays,
			Compress:   logFile.Compress,
		},
	}
}

// DefaultControls returns the stock action to key bindings.
func DefaultControls() map[string][]string {
	return map[string][]string{
		"forward":      {"w", "up"},
		"backward":     {"s", "down"},
		"strafe_left":  {"a"},
		"strafe_right": {"d"},
		"yaw_left":     {"q", "left"},
		"yaw_right":    {"e", "right"},
		"ascend":       {"space", "pageup"},
		"descend":      {"lshift", "pagedown"},
		"pitch_up":     {"r"},
		"pitch_down":   {"f"},
		"screenshot":   {"f12"},
		"reset":        {"home"},
		"quit":         {"escape"},
	}
}

// Validate rejects settings that would fail at construction time.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("framebuffer %dx%d: %w", g.Width, g.Height, ErrInvalid)
	}
	if g.WindowScale < 1 {
		return fmt.Errorf("window_scale %d: %w", g.WindowScale, ErrInvalid)
	}
	if (c.Terrain.HeightMap == "") != (c.Terrain.ColorMap == "") {
		return fmt.Errorf("height_map and color_map must be set together: %w", ErrInvalid)
	}
	if c.Terrain.HeightMap == "" && !vmath.IsPowerOfTwo(c.Terrain.Synthetic.Size) {
		return fmt.Errorf("synthetic size %d is not a power of two: %w", c.Terrain.Synthetic.Size, ErrInvalid)
	}
	if err := c.StartPose().Validate(); err != nil {
		return fmt.Errorf("camera: %w: %w", err, ErrInvalid)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render scale %v: %w", c.Render.Scale, ErrInvalid)
	}
	m := c.Motion
	for name, v := range map[string]float64{
		"speed_rate":    m.SpeedRate,
		"roll_rate":     m.RollRate,
		"angle_rate":    m.AngleRate,
		"altitude_rate": m.AltitudeRate,
		"horizon_rate":  m.HorizonRate,
	} {
		if v < 0 {
			return fmt.Errorf("motion %s %v: %w", name, v, ErrInvalid)
		}
	}
	return nil
}

// StartPose returns the configured starting camera pose.
func (c *Config) StartPose() camera.Pose {
	return camera.Pose{
		X:        c.Camera.X,
		Y:        c.Camera.Y,
		Altitude: c.Camera.Altitude,
		Angle:    c.Camera.Angle,
		Horizon:  c.Camera.Horizon,
		ZFar:     c.Camera.ZFar,
	}
}

// RenderOptions returns the renderer tunables.
func (c *Config) RenderOptions() voxel.Options {
	s := c.Render.SkyColor
	return voxel.Options{
		Scale:     c.Render.Scale,
		Sky:       color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]},
		EarlyExit: c.Render.EarlyExit,
		Motion:    c.Motion,
	}
}
