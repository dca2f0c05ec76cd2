package ecs

// EventType identifies lifecycle events recorded by the world.
type EventType string

const (
	EventSeekerSpawned        EventType = "seeker_spawned"
	EventSeekerRemoved        EventType = "seeker_removed"
	EventSeekerEvicted        EventType = "seeker_evicted"
	EventProjectileFired      EventType = "projectile_fired"
	EventProjectilesDespawned EventType = "projectiles_despawned"
	EventProjectilesEvicted   EventType = "projectiles_evicted"
	EventProjectilesCleared   EventType = "projectiles_cleared"
	EventWorldCleared         EventType = "world_cleared"
	EventConfigApplied        EventType = "config_applied"
)

// Event is a lifecycle notification. Count is the number of entities the
// event covers; Entity is set when it concerns a single seeker.
type Event struct {
	Type   EventType
	Entity Entity
	Count  int
}

// maxQueuedEvents bounds the queue for hosts that never drain it.
const maxQueuedEvents = 4096

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items   []Event
	dropped int
}

// Push adds an event. Events past the bound are counted and dropped.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	if len(q.items) >= maxQueuedEvents {
		q.dropped++
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	q.dropped = 0
	return out
}

// Dropped reports how many events were discarded since the last Drain.
func (q *EventQueue) Dropped() int {
	if q == nil {
		return 0
	}
	return q.dropped
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
