package system

import "github.com/milk9111/triangles/ecs"

// TriggerSystem repeats held spawn, remove and fire commands every
// TriggerInterval ticks.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Name() string { return "triggers" }

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	interval := uint64(w.Config().TriggerInterval)
	if interval == 0 || w.TickCount()%interval != 0 {
		return
	}

	in := w.Input()
	if in.SpawnHeld {
		w.SpawnSeeker(w.Target())
	}
	if in.RemoveHeld {
		w.RemoveOldestSeeker()
	}
	if in.FireHeld {
		w.FireFromAll()
	}
}
