package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/triangles/common"
)

// Bounds is an axis-aligned box in screen coordinates. The embedded BB keeps
// chipmunk's field names, so B holds the smallest Y and T the largest.
type Bounds struct {
	cp.BB
}

// NewBounds returns the box [inset, width-inset] x [inset, height-inset].
func NewBounds(width, height, inset float32) Bounds {
	return Bounds{BB: cp.BB{
		L: float64(inset),
		B: float64(inset),
		R: float64(width - inset),
		T: float64(height - inset),
	}}
}

// Grow expands the box by m on every side. Negative m shrinks it.
func (b Bounds) Grow(m float32) Bounds {
	g := float64(m)
	return Bounds{BB: cp.BB{L: b.L - g, B: b.B - g, R: b.R + g, T: b.T + g}}
}

func (b Bounds) Contains(p common.Vec2) bool {
	return b.ContainsVect(cp.Vector{X: float64(p.X), Y: float64(p.Y)})
}

func (b Bounds) Center() common.Vec2 {
	return common.Vec2{X: float32((b.L + b.R) / 2), Y: float32((b.B + b.T) / 2)}
}

func (b Bounds) Min() common.Vec2 {
	return common.Vec2{X: float32(b.L), Y: float32(b.B)}
}

func (b Bounds) Max() common.Vec2 {
	return common.Vec2{X: float32(b.R), Y: float32(b.T)}
}

// Bounce clamps pos into b and inverts the velocity component of every axis
// that was crossed. hit reports whether any axis was crossed.
func Bounce(pos, vel common.Vec2, b Bounds) (common.Vec2, common.Vec2, bool) {
	lo, hi := b.Min(), b.Max()
	hit := false

	if pos.X < lo.X {
		pos.X = lo.X
		vel.X = -vel.X
		hit = true
	} else if pos.X > hi.X {
		pos.X = hi.X
		vel.X = -vel.X
		hit = true
	}

	if pos.Y < lo.Y {
		pos.Y = lo.Y
		vel.Y = -vel.Y
		hit = true
	} else if pos.Y > hi.Y {
		pos.Y = hi.Y
		vel.Y = -vel.Y
		hit = true
	}

	return pos, vel, hit
}

// Escaped reports whether pos lies outside outer.
func Escaped(pos common.Vec2, outer Bounds) bool {
	return !outer.Contains(pos)
}
