package system

import (
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
)

// NewSimulation builds a world with the standard tick order: projectiles,
// seekers, compaction, then held triggers.
func NewSimulation(cfg component.Config) (*ecs.World, error) {
	w, err := ecs.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewSeekerSystem())
	w.AddSystem(NewCompactionSystem())
	w.AddSystem(NewTriggerSystem())
	return w, nil
}
