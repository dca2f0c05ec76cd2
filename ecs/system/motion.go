package system

import (
	"math"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

// StepProjectile advances p one tick: field acceleration, decay, position,
// then the boundary policy. Marked projectiles are left untouched.
func StepProjectile(p *component.Projectile, cfg component.Config, sources []common.Vec2) {
	if p == nil || p.Marked {
		return
	}

	p.Acceleration = physics.Acceleration(p.Position, cfg.Gravity, sources, cfg.FieldStrength)
	p.Velocity = p.Velocity.Add(p.Acceleration).Scale(cfg.DecayFactor())
	p.Position = p.Position.Add(p.Velocity)

	// bounce follows the live setting, as toggling it affects shots in flight
	p.Bounce = cfg.Bounce
	if p.Bounce {
		p.Position, p.Velocity, _ = physics.Bounce(p.Position, p.Velocity, cfg.ProjectileBounds())
		return
	}

	switch cfg.DespawnPolicy {
	case component.DespawnClamp:
		var hit bool
		p.Position, p.Velocity, hit = physics.Bounce(p.Position, p.Velocity, cfg.ProjectileBounds())
		if hit {
			p.Mark()
		}
	default:
		if physics.Escaped(p.Position, cfg.DespawnBounds()) {
			p.Mark()
		}
	}
}

// SteerSeeker moves s for one tick relative to target. Movement happens only
// outside the dead zone of half the cruise speed; inside it the seeker stops
// and faces up.
func SteerSeeker(s *component.Seeker, in component.Input, target common.Vec2, cfg component.Config) {
	if s == nil {
		return
	}
	speed := cfg.SeekerSpeed

	if s.Position.Dist(target) <= speed/2 {
		s.Velocity = common.FromHeading(0, speed)
		s.Heading = 0
		s.Position = clampSeeker(s.Position, cfg)
		return
	}

	if in.Retreat {
		s.Position = s.Position.Sub(s.Velocity)
	}
	if in.Approach {
		s.Position = s.Position.Add(s.Velocity)
	}
	if in.OrbitCCW {
		s.Position = s.Position.Add(s.Velocity.Rotate(-orbitAngle(speed, s.Position.Dist(target))))
	}
	if in.OrbitCW {
		s.Position = s.Position.Add(s.Velocity.Rotate(orbitAngle(speed, s.Position.Dist(target))))
	}

	if dir := target.Sub(s.Position); !dir.IsZero() {
		s.Velocity = dir.Normalized().Scale(speed)
		s.Heading = s.Velocity.Heading()
	}

	s.Position = clampSeeker(s.Position, cfg)
}

// clampSeeker keeps p inside the seeker bounds. The reflected velocity from
// Bounce is dropped: a seeker's velocity always follows its heading.
func clampSeeker(p common.Vec2, cfg component.Config) common.Vec2 {
	p, _, _ = physics.Bounce(p, common.Vec2{}, cfg.SeekerBounds())
	return p
}

// orbitAngle is the chord angle that keeps a step of length speed on a
// circle of radius dist around the target: acos(speed / 2·dist).
func orbitAngle(speed, dist float32) float32 {
	if dist <= 0 {
		return 0
	}
	ratio := common.Clamp(speed/(2*dist), -1, 1)
	return float32(math.Acos(float64(ratio)))
}
