// Package camera provides the flyover camera and its smoothed kinematics.
package camera

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPose is returned by Pose.Validate.
var ErrInvalidPose = errors.New("invalid camera pose")

// MinZFar is the shortest ray march that samples any terrain.
const MinZFar = 2

// Camera is the flyover pose plus smoothed motion state. Positions are in map
// space: X is the texture column and Y the texture row, growing downward.
type Camera struct {
	X, Y     float64
	Altitude float64
	Angle    float64 // Heading in radians, clockwise from the map's +X axis
	Horizon  float64 // Screen row offset applied to every projected height

	// RollFactor skews each column vertically to simulate banking.
	RollFactor float64

	FBSpeed       float64
	LRSpeed       float64
	AngleSpeed    float64
	AltitudeSpeed float64

	TargetFBSpeed       float64
	TargetLRSpeed       float64
	TargetAngleSpeed    float64
	TargetAltitudeSpeed float64
	TargetHorizon       float64
	TargetRollFactor    float64

	ZFar float64 // Ray march depth
}

// Pose is the starting placement of a camera.
type Pose struct {
	X, Y     float64
	Altitude float64
	Angle    float64
	Horizon  float64
	ZFar     float64
}

// Validate rejects poses that cannot produce a frame: a ray march shorter
// than MinZFar, or non-finite coordinates.
func (p Pose) Validate() error {
	if math.IsNaN(p.ZFar) || p.ZFar < MinZFar {
		return fmt.Errorf("z_far %v is below %d: %w", p.ZFar, MinZFar, ErrInvalidPose)
	}
	for name, v := range map[string]float64{
		"x":        p.X,
		"y":        p.Y,
		"altitude": p.Altitude,
		"angle":    p.Angle,
		"horizon":  p.Horizon,
		"z_far":    p.ZFar,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s %v: %w", name, v, ErrInvalidPose)
		}
	}
	return nil
}

// New creates a camera at rest at the given pose. Callers validate the pose
// first; see Pose.Validate.
func New(p Pose) *Camera {
	return &Camera{
		X:             p.X,
		Y:             p.Y,
		Altitude:      p.Altitude,
		Angle:         p.Angle,
		Horizon:       p.Horizon,
		TargetHorizon: p.Horizon,
		ZFar:          p.ZFar,
	}
}
