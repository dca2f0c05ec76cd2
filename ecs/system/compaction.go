package system

import (
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
)

// CompactionSystem drops projectiles marked for removal and enforces the
// population caps.
type CompactionSystem struct{}

func NewCompactionSystem() *CompactionSystem {
	return &CompactionSystem{}
}

func (s *CompactionSystem) Name() string { return "compaction" }

func (s *CompactionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	w.ForEachSeeker(func(e ecs.Entity, seeker *component.Seeker) {
		if removed := CompactProjectiles(seeker); removed > 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventProjectilesDespawned, Entity: e, Count: removed})
		}
	})
	w.EnforceCaps()
}

// CompactProjectiles removes marked projectiles in one pass, keeping the
// order of the survivors, and returns how many were removed.
func CompactProjectiles(s *component.Seeker) int {
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Marked {
			kept = append(kept, p)
		}
	}
	removed := len(s.Projectiles) - len(kept)
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
	return removed
}
