package system

import (
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
)

// SeekerSystem steers every seeker toward, away from, or around the target.
type SeekerSystem struct{}

func NewSeekerSystem() *SeekerSystem {
	return &SeekerSystem{}
}

func (s *SeekerSystem) Name() string { return "seekers" }

func (s *SeekerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cfg := w.Config()
	in := w.Input()
	target := w.Target()

	w.ForEachSeeker(func(_ ecs.Entity, seeker *component.Seeker) {
		SteerSeeker(seeker, in, target, cfg)
	})
}
