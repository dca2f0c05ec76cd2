package component

import "github.com/milk9111/triangles/common"

// Seeker is a pointer-tracking triangle. It exclusively owns its projectiles.
type Seeker struct {
	Position common.Vec2
	// Velocity has magnitude equal to the cruise speed and points along Heading.
	Velocity common.Vec2
	Heading  float32

	Projectiles []Projectile
}

// NewSeeker returns a seeker at pos facing up.
func NewSeeker(pos common.Vec2, speed float32) *Seeker {
	return &Seeker{
		Position: pos,
		Velocity: common.FromHeading(0, speed),
	}
}
