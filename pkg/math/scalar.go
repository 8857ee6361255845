package math

import "math"

// Approach moves value toward target by at most rate and never past it.
// Once the remaining distance is within one step the result is exactly target.
func Approach(value, target, rate float64) float64 {
	d := target - value
	if math.Abs(d) <= rate {
		return target
	}
	return value + Clamp(d, -rate, rate)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// WrapAngle normalizes radians into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
