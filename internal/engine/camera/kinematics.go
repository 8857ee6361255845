package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelspace/pkg/math"
)

// Advance runs one tick: select targets from in, relax every smoothed value
// toward its target, then integrate position, heading and altitude.
func (c *Camera) Advance(in Input, m Motion) {
	c.setTargets(in, m)
	c.relax(m)
	c.integrate()
}

func (c *Camera) setTargets(in Input, m Motion) {
	fb := axis(in.Forward, in.Backward)
	c.TargetFBSpeed = fb * m.MaxSpeed

	switch pitch := axis(in.PitchUp, in.PitchDown); {
	case pitch != 0:
		c.TargetHorizon = m.DefaultHorizon + pitch*m.PitchRange
	default:
		// Moving forward tips the view down, backing up tips it up.
		c.TargetHorizon = m.DefaultHorizon - fb*m.LookBias
	}

	lr := axis(in.StrafeLeft, in.StrafeRight)
	c.TargetLRSpeed = lr * m.MaxSpeed
	c.TargetRollFactor = -lr * m.MaxRoll

	c.TargetAltitudeSpeed = axis(in.Ascend, in.Descend) * m.MaxAltitudeSpeed
	c.TargetAngleSpeed = axis(in.YawRight, in.YawLeft) * m.MaxAngleSpeed
}

func (c *Camera) relax(m Motion) {
	c.FBSpeed = math.Approach(c.FBSpeed, c.TargetFBSpeed, m.SpeedRate)
	c.LRSpeed = math.Approach(c.LRSpeed, c.TargetLRSpeed, m.SpeedRate)
	c.RollFactor = math.Approach(c.RollFactor, c.TargetRollFactor, m.RollRate)
	c.AngleSpeed = math.Approach(c.AngleSpeed, c.TargetAngleSpeed, m.AngleRate)
	c.AltitudeSpeed = math.Approach(c.AltitudeSpeed, c.TargetAltitudeSpeed, m.AltitudeRate)
	c.Horizon = math.Approach(c.Horizon, c.TargetHorizon, m.HorizonRate)
}

func (c *Camera) integrate() {
	step := c.Forward().Scale(c.FBSpeed).Add(c.Left().Scale(c.LRSpeed))
	c.X += step.X
	c.Y += step.Y

	c.Angle = math.WrapAngle(c.Angle + c.AngleSpeed)
	c.Altitude += c.AltitudeSpeed
}

// Forward returns the unit heading vector in map space.
func (c *Camera) Forward() math.Vec2 {
	return math.Heading(c.Angle)
}

// Left returns the unit strafe-left vector: forward rotated by -π/2.
func (c *Camera) Left() math.Vec2 {
	return math.Heading(c.Angle - gomath.Pi/2)
}

// AtRest reports whether every smoothed value has settled on its target.
func (c *Camera) AtRest() bool {
	return c.FBSpeed == c.TargetFBSpeed &&
		c.LRSpeed == c.TargetLRSpeed &&
		c.RollFactor == c.TargetRollFactor &&
		c.AngleSpeed == c.TargetAngleSpeed &&
		c.AltitudeSpeed == c.TargetAltitudeSpeed &&
		c.Horizon == c.TargetHorizon
}
