package input

import (
	"testing"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

type heldKeys map[Key]bool

func (h heldKeys) Down(k Key) bool { return h[k] }

func defaultBindings(t *testing.T) Bindings {
	t.Helper()
	b, err := ParseBindings(map[string][]string{
		"forward":    {"w", "Up"},
		"backward":   {"s"},
		"yaw_right":  {"e"},
		"pitch_down": {"f"},
		"quit":       {"escape"},
	})
	if err != nil {
		t.Fatalf("ParseBindings: %v", err)
	}
	return b
}

func TestSnapshot(t *testing.T) {
	b := defaultBindings(t)
	tests := []struct {
		name string
		held heldKeys
		want camera.Input
	}{
		{"nothing held", heldKeys{}, camera.Input{}},
		{"primary key", heldKeys{"w": true}, camera.Input{Forward: true}},
		{"alternate key", heldKeys{"up": true, "e": true}, camera.Input{Forward: true, YawRight: true}},
		{"unbound key ignored", heldKeys{"z": true, "f": true}, camera.Input{PitchDown: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Snapshot(tt.held); got != tt.want {
				t.Errorf("Snapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
	if !b.Down(heldKeys{"escape": true}, ActionQuit) {
		t.Error("expected quit to be down")
	}
}

func TestParseBindingsErrors(t *testing.T) {
	if _, err := ParseBindings(map[string][]string{"fly": {"w"}}); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := ParseBindings(map[string][]string{"forward": {"hyper"}}); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEdge(t *testing.T) {
	var e Edge
	seq := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}
	for i, down := range seq {
		if got := e.Pressed(down); got != want[i] {
			t.Errorf("step %d: Pressed(%v) = %v, want %v", i, down, got, want[i])
		}
	}
}

func TestParseScript(t *testing.T) {
	steps, err := ParseScript("f:30, f>:20 ,-:5,ud^v<lrb:1")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	if steps[0] != (Step{Input: camera.Input{Forward: true}, Ticks: 30}) {
		t.Errorf("step 0 = %+v", steps[0])
	}
	if steps[1] != (Step{Input: camera.Input{Forward: true, YawRight: true}, Ticks: 20}) {
		t.Errorf("step 1 = %+v", steps[1])
	}
	if steps[2] != (Step{Ticks: 5}) {
		t.Errorf("step 2 = %+v", steps[2])
	}
	all := camera.Input{
		Forward: false, Backward: true, StrafeLeft: true, StrafeRight: true,
		Ascend: true, Descend: true, YawLeft: true, PitchUp: true, PitchDown: true,
	}
	if steps[3].Input != all {
		t.Errorf("step 3 = %+v, want %+v", steps[3].Input, all)
	}

	for _, bad := range []string{"f", "f:0", "f:x", "z:3"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q): expected error", bad)
		}
	}
}
