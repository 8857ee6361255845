package voxel

import (
	gomath "math"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
)

// Span is one visible run of terrain in a column, as produced by the march.
// Rows [Top, Bottom) are the unskewed screen rows; Lean is the banking offset
// added when the span is painted.
type Span struct {
	Depth  int
	Top    int
	Bottom int
	Lean   int
	Texel  int
}

// marchColumn walks the ray for screen column i from near to far and calls
// emit for every sample that rises above everything drawn before it in the
// column. Emitted spans have strictly decreasing Top values.
func marchColumn(cam *camera.Camera, f Frustum, tex *terrain.Textures, i, width, height int, opts Options, emit func(Span)) {
	zFar := cam.ZFar
	t := float64(i) / float64(width)
	step := f.Ray(t, zFar)
	lean := int(cam.RollFactor * (t - 0.5) * float64(height))

	rx, ry := cam.X, cam.Y
	maxVisibleY := height
	for z := 1; float64(z) < zFar; z++ {
		rx += step.X
		ry += step.Y

		off := tex.Offset(rx, ry)
		py := gomath.Floor((cam.Altitude-tex.Elevation(off))/float64(z)*opts.Scale + cam.Horizon)
		// Clamp before converting so extreme altitudes cannot overflow int.
		projected := height - 1
		if py < 0 {
			projected = 0
		} else if py < float64(height-1) {
			projected = int(py)
		}

		if projected < maxVisibleY {
			emit(Span{Depth: z, Top: projected, Bottom: maxVisibleY, Lean: lean, Texel: off})
			maxVisibleY = projected
			if opts.EarlyExit && maxVisibleY == 0 {
				return
			}
		}
	}
}
