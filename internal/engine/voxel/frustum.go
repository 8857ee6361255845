package voxel

import "github.com/Faultbox/voxelspace/pkg/math"

// Frustum holds the map-space offsets of the far-plane corners relative to the
// camera. Interpolating between them across the screen gives each column's ray
// endpoint at depth zFar.
type Frustum struct {
	PL math.Vec2 // left corner (PLX, PLY)
	PR math.Vec2 // right corner (PRX, PRY)
}

// ProjectFrustum rotates the corners (zFar, -zFar) and (zFar, zFar) of the
// unrotated view square by angle, so depth points along the heading. The
// result spans a 90 degree horizontal field of view.
func ProjectFrustum(angle, zFar float64) Frustum {
	return Frustum{
		PL: math.Vec2{X: zFar, Y: -zFar}.Rotate(angle),
		PR: math.Vec2{X: zFar, Y: zFar}.Rotate(angle),
	}
}

// Ray returns the per-unit-depth step for the ray at horizontal fraction t in
// [0, 1), where 0 is the left screen edge.
func (f Frustum) Ray(t, zFar float64) math.Vec2 {
	return f.PL.Lerp(f.PR, t).Scale(1 / zFar)
}
