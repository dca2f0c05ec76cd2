package component

import "github.com/milk9111/triangles/common"

// Projectile is fired by a seeker and moves under the force field.
type Projectile struct {
	Position     common.Vec2
	Velocity     common.Vec2
	Acceleration common.Vec2

	Bounce bool
	// Marked is set once the projectile must be removed. It never resets.
	Marked bool
}

// Mark flags the projectile for removal at the next compaction.
func (p *Projectile) Mark() {
	p.Marked = true
}

// Heading is derived from the velocity, never stored.
func (p *Projectile) Heading() float32 {
	return p.Velocity.Heading()
}

func (p *Projectile) Speed() float32 {
	return p.Velocity.Len()
}
