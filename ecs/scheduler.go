package ecs

import "time"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Named systems get their own entry in the per-tick timing stats.
type Named interface {
	Name() string
}

// PhaseTiming is how long one named system took during the last tick.
type PhaseTiming struct {
	Name     string
	Duration time.Duration
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order and returns the timings of the named ones.
func (s *Scheduler) Update(w *World) []PhaseTiming {
	var timings []PhaseTiming
	for _, system := range s.systems {
		start := time.Now()
		system.Update(w)
		if n, ok := system.(Named); ok {
			timings = append(timings, PhaseTiming{Name: n.Name(), Duration: time.Since(start)})
		}
	}
	return timings
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
