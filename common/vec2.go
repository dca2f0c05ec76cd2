package common

import "math"

// Vec2 is a 2D point or vector in screen coordinates (+Y points down).
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean magnitude.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

func (v Vec2) Dist(o Vec2) float32 {
	return v.Sub(o).Len()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector, or the zero vector when v has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate turns v by theta radians. With +Y down a positive angle turns
// clockwise on screen.
func (v Vec2) Rotate(theta float32) Vec2 {
	sin, cos := math.Sincos(float64(theta))
	x, y := float64(v.X), float64(v.Y)
	return Vec2{
		X: float32(x*cos - y*sin),
		Y: float32(x*sin + y*cos),
	}
}

// Heading returns the angle of v measured clockwise from up (-Y), in
// [0, 2π). The zero vector has heading 0.
func (v Vec2) Heading() float32 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return WrapAngle(float32(math.Atan2(float64(v.X), float64(-v.Y))))
}

// FromHeading builds a vector of length mag pointing along heading h.
func FromHeading(h, mag float32) Vec2 {
	sin, cos := math.Sincos(float64(h))
	return Vec2{X: float32(sin) * mag, Y: float32(-cos) * mag}
}
