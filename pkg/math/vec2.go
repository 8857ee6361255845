// Package math provides the small amount of 2D math the renderer needs.
package math

import "math"

// Vec2 is a 2D vector in map space (x = column, y = row).
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rotate applies the standard 2D rotation matrix for angle radians.
// In map space (y growing downward) a positive angle turns clockwise on screen.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Lerp interpolates between v and other; t=0 yields v, t=1 yields other.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// Heading returns the unit vector for angle radians measured clockwise from +X.
func Heading(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}
