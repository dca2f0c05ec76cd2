package ecs

import (
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/physics"
)

// ProjectileView is the render-facing state of one projectile.
type ProjectileView struct {
	Position common.Vec2
	Heading  float32
	Speed    float32
}

// SeekerView is the render-facing state of one seeker.
type SeekerView struct {
	Entity      Entity
	Position    common.Vec2
	Heading     float32
	Projectiles []ProjectileView
}

// Stats summarises the world after a tick, for HUDs and benchmarks.
type Stats struct {
	Tick        uint64
	Seekers     int
	Projectiles int
	Gravity     physics.GravityMode
	Bounce      bool
	Decay       float32
	Phases      []PhaseTiming
}

// FrameSnapshot is a read-only copy of the world, safe to keep after the
// next tick.
type FrameSnapshot struct {
	Seekers      []SeekerView
	FieldSources []common.Vec2
	Stats        Stats
}

// Snapshot copies the current state.
func (w *World) Snapshot() FrameSnapshot {
	snap := FrameSnapshot{
		Seekers:      make([]SeekerView, 0, len(w.seekers)),
		FieldSources: append([]common.Vec2(nil), w.EffectiveSources()...),
		Stats: Stats{
			Tick:    w.tick,
			Seekers: len(w.seekers),
			Gravity: w.config.Gravity,
			Bounce:  w.config.Bounce,
			Decay:   w.config.Decay,
			Phases:  append([]PhaseTiming(nil), w.phases...),
		},
	}

	for _, slot := range w.seekers {
		s := slot.seeker
		view := SeekerView{
			Entity:      slot.entity,
			Position:    s.Position,
			Heading:     s.Heading,
			Projectiles: make([]ProjectileView, 0, len(s.Projectiles)),
		}
		for i := range s.Projectiles {
			p := &s.Projectiles[i]
			view.Projectiles = append(view.Projectiles, ProjectileView{
				Position: p.Position,
				Heading:  p.Heading(),
				Speed:    p.Speed(),
			})
		}
		snap.Stats.Projectiles += len(view.Projectiles)
		snap.Seekers = append(snap.Seekers, view)
	}
	return snap
}

// Phase returns the timing of the named system from the last tick.
func (s Stats) Phase(name string) (PhaseTiming, bool) {
	for _, p := range s.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseTiming{}, false
}
