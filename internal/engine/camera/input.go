package camera

// Input is one tick's snapshot of movement intents.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Ascend      bool
	Descend     bool
	YawLeft     bool
	YawRight    bool
	PitchUp     bool
	PitchDown   bool
}

// axis folds two opposing intents into -1, 0 or +1.
func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
