package main

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
)

// wanderPilot moves the aim point along two perlin noise tracks and holds
// every trigger, so a run keeps both populations at their caps.
type wanderPilot struct {
	nx, ny *perlin.Perlin
	bounds common.Vec2
	step   float64
}

func newWanderPilot(seed int64, width, height float32) *wanderPilot {
	return &wanderPilot{
		nx:     perlin.NewPerlin(2, 2, 3, seed),
		ny:     perlin.NewPerlin(2, 2, 3, seed+1),
		bounds: common.V(width, height),
		step:   0.01,
	}
}

// Target returns the aim point for tick. Noise is roughly in [-1, 1].
func (p *wanderPilot) Target(tick uint64) common.Vec2 {
	t := float64(tick) * p.step
	x := common.MapRange(float32(p.nx.Noise1D(t)), -1, 1, 0, p.bounds.X)
	y := common.MapRange(float32(p.ny.Noise1D(t)), -1, 1, 0, p.bounds.Y)
	return common.V(common.Clamp(x, 0, p.bounds.X), common.Clamp(y, 0, p.bounds.Y))
}

// Input orbits clockwise and switches to approach for a stretch every 240
// ticks.
func (p *wanderPilot) Input(tick uint64) component.Input {
	in := component.Input{FireHeld: true, SpawnHeld: true}
	if tick%240 < 60 {
		in.Approach = true
	} else {
		in.OrbitCW = true
	}
	return in
}
