package physics

import "github.com/milk9111/triangles/common"

// DefaultFieldStrength is K in the capped inverse-square law.
const DefaultFieldStrength float32 = 10000

// Acceleration evaluates the force field at pos. Point-based modes pull
// toward sources[0]; MultiPoint sums a capped contribution from every
// source. Callers guarantee sources is non-empty for point-based modes;
// an empty list yields zero.
func Acceleration(pos common.Vec2, mode GravityMode, sources []common.Vec2, strength float32) common.Vec2 {
	if mode == GravityOff || len(sources) == 0 {
		return common.Vec2{}
	}

	switch mode {
	case GravityUniform, GravityRadialTrue:
		return pull(pos, sources[0], 1)
	case GravityRadialCapped:
		return cappedPull(pos, sources[0], strength)
	case GravityMultiPoint:
		var sum common.Vec2
		for _, src := range sources {
			sum = sum.Add(cappedPull(pos, src, strength))
		}
		return sum
	default:
		return common.Vec2{}
	}
}

func cappedPull(pos, src common.Vec2, strength float32) common.Vec2 {
	d := pos.Dist(src)
	mag := float32(1)
	// d*d > K is the same as d > sqrt(K) without the root
	if d*d > strength {
		mag = strength / (d * d)
	}
	return pull(pos, src, mag)
}

// pull points from pos toward src with the given magnitude. A position on
// top of the source pulls "up" (heading 0).
func pull(pos, src common.Vec2, mag float32) common.Vec2 {
	dir := src.Sub(pos).Normalized()
	if dir.IsZero() {
		return common.FromHeading(0, mag)
	}
	return dir.Scale(mag)
}
