package camera

import (
	"errors"
	"math"
	"testing"
)

func TestPoseValidate(t *testing.T) {
	valid := Pose{X: 512, Y: 512, Altitude: 150, Angle: 1.5 * math.Pi, Horizon: 50, ZFar: 400}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*Pose)
	}{
		{"zero z_far", func(p *Pose) { p.ZFar = 0 }},
		{"z_far below minimum", func(p *Pose) { p.ZFar = 1.5 }},
		{"negative z_far", func(p *Pose) { p.ZFar = -400 }},
		{"NaN z_far", func(p *Pose) { p.ZFar = math.NaN() }},
		{"infinite z_far", func(p *Pose) { p.ZFar = math.Inf(1) }},
		{"NaN altitude", func(p *Pose) { p.Altitude = math.NaN() }},
		{"infinite x", func(p *Pose) { p.X = math.Inf(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidPose) {
				t.Errorf("Validate() = %v, want ErrInvalidPose", err)
			}
		})
	}

	// The minimum itself marches one sample.
	p := valid
	p.ZFar = MinZFar
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() at MinZFar = %v, want nil", err)
	}
}
