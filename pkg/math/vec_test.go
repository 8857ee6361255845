package math

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Scale(t *testing.T) {
	if got := (Vec2{3, -4}).Scale(0.5); got != (Vec2{1.5, -2}) {
		t.Errorf("Vec2.Scale(0.5) = %v, want {1.5 -2}", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	// +X rotated a quarter turn lands on +Y, which is "down" in map space.
	got := Vec2{1, 0}.Rotate(math.Pi / 2)
	if !near(got.X, 0) || !near(got.Y, 1) {
		t.Errorf("Vec2.Rotate(π/2) = %v, want {0 1}", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 10}
	b := Vec2{10, 0}
	if got := a.Lerp(b, 0.5); got != (Vec2{5, 5}) {
		t.Errorf("Vec2.Lerp(0.5) = %v, want {5 5}", got)
	}
}

func TestHeading(t *testing.T) {
	h := Heading(1.5 * math.Pi)
	if !near(h.X, 0) || !near(h.Y, -1) {
		t.Errorf("Heading(1.5π) = %v, want {0 -1}", h)
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		name                string
		value, target, rate float64
		want                float64
	}{
		{"step up", 0, 3, 0.5, 0.5},
		{"step down", 0, -3, 0.5, -0.5},
		{"snap within step", 2.9, 3, 0.5, 3},
		{"snap inexact float", 0.1, 0.3, 0.2, 0.3},
		{"already there", 1, 1, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.value, tt.target, tt.rate); got != tt.want {
				t.Errorf("Approach(%v, %v, %v) = %v, want %v", tt.value, tt.target, tt.rate, got, tt.want)
			}
		})
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024} {
		if !IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []int{0, -4, 3, 6, 1000} {
		if IsPowerOfTwo(n) {
			t.Errorf("IsPowerOfTwo(%d) = true", n)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(-math.Pi / 2); !near(got, 1.5*math.Pi) {
		t.Errorf("WrapAngle(-π/2) = %v, want 1.5π", got)
	}
	if got := WrapAngle(2*math.Pi + 1); !near(got, 1) {
		t.Errorf("WrapAngle(2π+1) = %v, want 1", got)
	}
}
