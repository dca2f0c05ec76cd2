package ecs

import (
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
)

// SpawnSeeker appends a seeker at p and evicts the oldest ones while the
// population is over the cap. A spawn on top of the newest seeker is
// ignored so a held trigger over a still pointer does not stack seekers.
func (w *World) SpawnSeeker(p common.Vec2) Entity {
	if n := len(w.seekers); n > 0 && w.seekers[n-1].seeker.Position == p {
		return 0
	}

	e := w.entities.create()
	s := component.NewSeeker(p, w.config.SeekerSpeed)
	w.seekers = append(w.seekers, seekerSlot{entity: e, seeker: s})
	w.byID.Set(e.id(), s)
	w.events.Push(Event{Type: EventSeekerSpawned, Entity: e, Count: 1})

	for len(w.seekers) > w.config.SeekerCap {
		w.removeAt(0, EventSeekerEvicted)
	}
	return e
}

// RemoveOldestSeeker removes the seeker at index 0, if any.
func (w *World) RemoveOldestSeeker() bool {
	if len(w.seekers) == 0 {
		return false
	}
	w.removeAt(0, EventSeekerRemoved)
	return true
}

// RemoveSeeker removes one seeker and its projectiles.
func (w *World) RemoveSeeker(e Entity) bool {
	for i, slot := range w.seekers {
		if slot.entity == e {
			w.removeAt(i, EventSeekerRemoved)
			return true
		}
	}
	return false
}

func (w *World) removeAt(i int, reason EventType) {
	slot := w.seekers[i]
	copy(w.seekers[i:], w.seekers[i+1:])
	w.seekers[len(w.seekers)-1] = seekerSlot{}
	w.seekers = w.seekers[:len(w.seekers)-1]
	w.byID.Remove(slot.entity.id())
	w.entities.destroy(slot.entity)
	w.events.Push(Event{Type: reason, Entity: slot.entity, Count: 1})
}

// FireProjectile adds one projectile to seeker e, spawned ahead of it along
// its heading. It is a no-op when the global projectile cap is met.
func (w *World) FireProjectile(e Entity) bool {
	if w.ProjectileCount() >= w.config.ProjectileCap {
		return false
	}
	s, ok := w.Seeker(e)
	if !ok {
		return false
	}
	w.fire(e, s)
	return true
}

// FireFromAll fires once from every seeker, oldest first, until the cap is
// met. It returns how many projectiles were added.
func (w *World) FireFromAll() int {
	total := w.ProjectileCount()
	fired := 0
	for _, slot := range w.seekers {
		if total >= w.config.ProjectileCap {
			break
		}
		w.fire(slot.entity, slot.seeker)
		total++
		fired++
	}
	return fired
}

func (w *World) fire(e Entity, s *component.Seeker) {
	cfg := w.config
	s.Projectiles = append(s.Projectiles, component.Projectile{
		Position: s.Position.Add(common.FromHeading(s.Heading, cfg.MuzzleOffset)),
		Velocity: common.FromHeading(s.Heading, cfg.ProjectileSpeed),
		Bounce:   cfg.Bounce,
	})
	w.events.Push(Event{Type: EventProjectileFired, Entity: e, Count: 1})
}

// ClearAll removes every seeker and therefore every projectile.
func (w *World) ClearAll() {
	if len(w.seekers) == 0 {
		return
	}
	n := len(w.seekers)
	for i, slot := range w.seekers {
		w.entities.destroy(slot.entity)
		w.seekers[i] = seekerSlot{}
	}
	w.seekers = w.seekers[:0]
	w.byID.Clear()
	w.events.Push(Event{Type: EventWorldCleared, Count: n})
}

// ClearProjectiles empties one seeker's projectiles and keeps the seeker.
func (w *World) ClearProjectiles(e Entity) bool {
	s, ok := w.Seeker(e)
	if !ok {
		return false
	}
	n := len(s.Projectiles)
	s.Projectiles = s.Projectiles[:0]
	if n > 0 {
		w.events.Push(Event{Type: EventProjectilesCleared, Entity: e, Count: n})
	}
	return true
}

// ClearAllProjectiles empties every seeker's projectiles.
func (w *World) ClearAllProjectiles() {
	for _, slot := range w.seekers {
		w.ClearProjectiles(slot.entity)
	}
}

// EnforceCaps evicts the oldest projectiles of the oldest seekers, then the
// oldest seekers, until both populations are within their caps.
func (w *World) EnforceCaps() {
	excess := w.ProjectileCount() - w.config.ProjectileCap
	for i := 0; excess > 0 && i < len(w.seekers); i++ {
		slot := w.seekers[i]
		n := min(excess, len(slot.seeker.Projectiles))
		if n == 0 {
			continue
		}
		slot.seeker.Projectiles = append(slot.seeker.Projectiles[:0], slot.seeker.Projectiles[n:]...)
		excess -= n
		w.events.Push(Event{Type: EventProjectilesEvicted, Entity: slot.entity, Count: n})
	}
	for len(w.seekers) > w.config.SeekerCap {
		w.removeAt(0, EventSeekerEvicted)
	}
}

// Seeker looks up a live seeker by handle.
func (w *World) Seeker(e Entity) (*component.Seeker, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	return w.byID.Get(e.id())
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// ForEachSeeker visits seekers oldest first. fn must not add or remove
// seekers.
func (w *World) ForEachSeeker(fn func(e Entity, s *component.Seeker)) {
	for _, slot := range w.seekers {
		fn(slot.entity, slot.seeker)
	}
}

// Entities returns the live seeker handles, oldest first.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.seekers))
	for _, slot := range w.seekers {
		out = append(out, slot.entity)
	}
	return out
}

func (w *World) SeekerCount() int {
	return len(w.seekers)
}

// ProjectileCount includes projectiles marked for removal but not yet
// compacted.
func (w *World) ProjectileCount() int {
	n := 0
	for _, slot := range w.seekers {
		n += len(slot.seeker.Projectiles)
	}
	return n
}
