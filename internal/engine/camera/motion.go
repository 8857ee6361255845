package camera

// Motion holds the tunables for how quickly the camera responds to input.
// Max* values are the targets input selects; *Rate values are the largest
// change a current value may make toward its target in one tick.
type Motion struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	MaxAltitudeSpeed float64 `yaml:"max_altitude_speed"`
	MaxAngleSpeed    float64 `yaml:"max_angle_speed"`
	MaxRoll          float64 `yaml:"max_roll"`

	DefaultHorizon float64 `yaml:"default_horizon"`
	LookBias       float64 `yaml:"look_bias"`
	PitchRange     float64 `yaml:"pitch_range"`

	SpeedRate    float64 `yaml:"speed_rate"`
	RollRate     float64 `yaml:"roll_rate"`
	AngleRate    float64 `yaml:"angle_rate"`
	AltitudeRate float64 `yaml:"altitude_rate"`
	HorizonRate  float64 `yaml:"horizon_rate"`
}

// DefaultMotion returns the stock flight feel.
func DefaultMotion() Motion {
	return Motion{
		MaxSpeed:         3,
		MaxAltitudeSpeed: 2,
		MaxAngleSpeed:    0.03,
		MaxRoll:          0.3,
		DefaultHorizon:   50,
		LookBias:         20,
		PitchRange:       60,
		SpeedRate:        0.1,
		RollRate:         0.01,
		AngleRate:        0.002,
		AltitudeRate:     0.1,
		HorizonRate:      1,
	}
}
