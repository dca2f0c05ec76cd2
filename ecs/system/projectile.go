package system

import (
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
)

// ProjectileSystem integrates every live projectile one tick.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Name() string { return "projectiles" }

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cfg := w.Config()
	sources := w.EffectiveSources()

	w.ForEachSeeker(func(_ ecs.Entity, seeker *component.Seeker) {
		for i := range seeker.Projectiles {
			StepProjectile(&seeker.Projectiles[i], cfg, sources)
		}
	})
}
