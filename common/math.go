package common

import "math"

const (
	// BaseWidth and BaseHeight are the default world size.
	BaseWidth  = 1600
	BaseHeight = 800

	// TwoPi is one full turn in radians.
	TwoPi = float32(2 * math.Pi)
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MapRange linearly maps v from [inLo, inHi] onto [outLo, outHi].
func MapRange(v, inLo, inHi, outLo, outHi float32) float32 {
	if inHi == inLo {
		return outLo
	}
	return Lerp(outLo, outHi, (v-inLo)/(inHi-inLo))
}

// WrapAngle folds any finite angle into [0, 2π).
func WrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), 2*math.Pi))
	if w < 0 {
		w += TwoPi
	}
	// float32 rounding can land exactly on 2π
	if w >= TwoPi {
		return 0
	}
	return w
}
