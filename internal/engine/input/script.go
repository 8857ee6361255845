package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// Step is a run of identical input lasting Ticks frames.
type Step struct {
	Input camera.Input
	Ticks int
}

// ParseScript reads a comma separated list of "<intents>:<ticks>" steps, where
// intents are letters from the set below, or "-" for neutral:
//
//	f forward   b backward   l strafe left   r strafe right
//	u ascend    d descend    < yaw left      > yaw right
//	^ pitch up  v pitch down
//
// For example "f:30,f>:20,-:10" flies forward, banks right, then coasts.
func ParseScript(s string) ([]Step, error) {
	var steps []Step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		intents, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing tick count", part)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks < 1 {
			return nil, fmt.Errorf("step %q: bad tick count", part)
		}
		var in camera.Input
		for _, c := range intents {
			switch c {
			case '-':
			case 'f':
				in.Forward = true
			case 'b':
				in.Backward = true
			case 'l':
				in.StrafeLeft = true
			case 'r':
				in.StrafeRight = true
			case 'u':
				in.Ascend = true
			case 'd':
				in.Descend = true
			case '<':
				in.YawLeft = true
			case '>':
				in.YawRight = true
			case '^':
				in.PitchUp = true
			case 'v':
				in.PitchDown = true
			default:
				return nil, fmt.Errorf("step %q: unknown intent %q", part, c)
			}
		}
		steps = append(steps, Step{Input: in, Ticks: ticks})
	}
	return steps, nil
}
