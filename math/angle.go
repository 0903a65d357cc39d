package math

import "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Sin is float32 sine evaluated in float64.
func Sin(rad float32) float32 {
	return float32(math.Sin(float64(rad)))
}

// Cos is float32 cosine evaluated in float64.
func Cos(rad float32) float32 {
	return float32(math.Cos(float64(rad)))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
