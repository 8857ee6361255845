// Package voxel renders a heightfield flyover by marching one ray per screen
// column through the height map and painting the visible spans front to back.
package voxel

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
)

// ErrInvalidOptions is returned by NewRenderer for unusable tunables.
var ErrInvalidOptions = errors.New("invalid render options")

// Options are the renderer tunables.
type Options struct {
	Scale     float64    // Vertical exaggeration of projected heights
	Sky       color.RGBA // Clear colour for rows no terrain covers
	EarlyExit bool       // Stop a column's march once it reaches the top row
	Motion    camera.Motion
}

// DefaultOptions returns the stock renderer tunables.
func DefaultOptions() Options {
	return Options{
		Scale:     120,
		Sky:       color.RGBA{135, 206, 235, 255},
		EarlyExit: true,
		Motion:    camera.DefaultMotion(),
	}
}

// Validate reports whether the options can drive a frame.
func (o Options) Validate() error {
	if o.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive: %w", o.Scale, ErrInvalidOptions)
	}
	return nil
}

// Renderer binds the session textures and tunables so hosts only pass the
// per-frame state.
type Renderer struct {
	textures *terrain.Textures
	opts     Options
}

// NewRenderer validates its inputs once so that frames cannot fail later.
func NewRenderer(tex *terrain.Textures, opts Options) (*Renderer, error) {
	if tex == nil {
		return nil, errors.New("textures are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{textures: tex, opts: opts}, nil
}

// Options returns the tunables the renderer was built with.
func (r *Renderer) Options() Options { return r.opts }

// Textures returns the session terrain.
func (r *Renderer) Textures() *terrain.Textures { return r.textures }

// RenderFrame advances the camera by one tick and draws the resulting frame.
func (r *Renderer) RenderFrame(cam *camera.Camera, in camera.Input, fb *framebuffer.Framebuffer) {
	RenderFrame(cam, in, r.textures, fb, r.opts)
}

// RenderFrame is the per-tick entry point: advance the camera from in, clear
// fb to the sky colour, then march and paint every column. cam must come from
// a pose that passed camera.Pose.Validate; a ZFar below camera.MinZFar marches
// no samples and leaves the frame all sky.
func RenderFrame(cam *camera.Camera, in camera.Input, tex *terrain.Textures, fb *framebuffer.Framebuffer, opts Options) {
	cam.Advance(in, opts.Motion)
	Draw(cam, tex, fb, opts)
}

// Draw paints the view from cam without advancing it.
func Draw(cam *camera.Camera, tex *terrain.Textures, fb *framebuffer.Framebuffer, opts Options) {
	fb.Clear(opts.Sky)

	f := ProjectFrustum(cam.Angle, cam.ZFar)
	width, height := fb.Width(), fb.Height()
	for i := 0; i < width; i++ {
		marchColumn(cam, f, tex, i, width, height, opts, func(s Span) {
			r, g, b := tex.Color(s.Texel)
			fb.FillColumn(i, s.Top+s.Lean, s.Bottom+s.Lean, r, g, b)
		})
	}
}

// ColumnSpans returns the spans column i would paint for cam, in march order.
func ColumnSpans(cam *camera.Camera, tex *terrain.Textures, i, width, height int, opts Options) []Span {
	var spans []Span
	f := ProjectFrustum(cam.Angle, cam.ZFar)
	marchColumn(cam, f, tex, i, width, height, opts, func(s Span) {
		spans = append(spans, s)
	})
	return spans
}
