package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

var ErrFieldSourceIndex = errors.New("ecs: field source index out of range")

type seekerSlot struct {
	entity Entity
	seeker *component.Seeker
}

// World owns every seeker, their projectiles, the field sources and the
// active config. It is not safe for concurrent use: the host calls Tick
// once per frame and issues commands and config changes between ticks.
type World struct {
	entities entityStore
	// seekers is ordered oldest first; index 0 is evicted first.
	seekers []seekerSlot
	byID    SparseSet[*component.Seeker]

	config    component.Config
	sources   []common.Vec2
	scheduler Scheduler
	events    EventQueue

	input  component.Input
	target common.Vec2
	tick   uint64
	phases []PhaseTiming
}

// NewWorld creates an empty world. The field source list starts with the
// world centre.
func NewWorld(cfg component.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{config: cfg}
	w.ResetFieldSources()
	return w, nil
}

// AddSystem appends a system to the tick order.
func (w *World) AddSystem(s System) {
	w.scheduler.Add(s)
}

// Tick advances the simulation one frame and returns what the host should
// draw.
func (w *World) Tick(in component.Input, target common.Vec2) FrameSnapshot {
	w.tick++
	w.input = in
	w.target = target
	w.phases = w.scheduler.Update(w)
	return w.Snapshot()
}

// TickCount is the number of ticks run so far; during a tick it is the
// 1-based number of the current one.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Input returns the command state of the current tick.
func (w *World) Input() component.Input {
	return w.input
}

// Target returns the pointer position of the current tick.
func (w *World) Target() common.Vec2 {
	return w.target
}

// Events returns the world event queue. Hosts drain it after each frame.
func (w *World) Events() *EventQueue {
	return &w.events
}

// Config returns a copy of the active config.
func (w *World) Config() component.Config {
	return w.config
}

// ApplyConfig validates cfg and swaps it in whole. On error the previous
// config stays active.
func (w *World) ApplyConfig(cfg component.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w.config = cfg
	w.events.Push(Event{Type: EventConfigApplied})
	return nil
}

func (w *World) SetGravityMode(m physics.GravityMode) error {
	cfg := w.config
	cfg.Gravity = m
	return w.ApplyConfig(cfg)
}

// CycleGravityMode switches to the next gravity mode and returns it.
func (w *World) CycleGravityMode() physics.GravityMode {
	w.config.Gravity = w.config.Gravity.Next()
	w.events.Push(Event{Type: EventConfigApplied})
	return w.config.Gravity
}

func (w *World) SetBounce(on bool) {
	w.config.Bounce = on
	w.events.Push(Event{Type: EventConfigApplied})
}

// ToggleBounce flips the bounce flag and returns the new value.
func (w *World) ToggleBounce() bool {
	w.SetBounce(!w.config.Bounce)
	return w.config.Bounce
}

func (w *World) SetDecay(decay float32) error {
	cfg := w.config
	cfg.Decay = decay
	return w.ApplyConfig(cfg)
}

// SetWorldBounds resizes the world. Entities outside the new bounds are
// handled by the boundary policy on the next tick.
func (w *World) SetWorldBounds(width, height float32) error {
	cfg := w.config
	cfg.WorldWidth = width
	cfg.WorldHeight = height
	return w.ApplyConfig(cfg)
}

func (w *World) SetCaps(seekers, projectiles int) error {
	cfg := w.config
	cfg.SeekerCap = seekers
	cfg.ProjectileCap = projectiles
	return w.ApplyConfig(cfg)
}

// FieldSources returns a copy of the host-supplied gravity wells.
func (w *World) FieldSources() []common.Vec2 {
	return append([]common.Vec2(nil), w.sources...)
}

// SetFieldSource replaces source i. i == len appends.
func (w *World) SetFieldSource(i int, p common.Vec2) error {
	switch {
	case i >= 0 && i < len(w.sources):
		w.sources[i] = p
	case i == len(w.sources):
		w.sources = append(w.sources, p)
	default:
		return fmt.Errorf("%w: %d of %d", ErrFieldSourceIndex, i, len(w.sources))
	}
	return nil
}

func (w *World) AddFieldSource(p common.Vec2) {
	w.sources = append(w.sources, p)
}

// ResetFieldSources leaves a single source at the world centre.
func (w *World) ResetFieldSources() {
	w.sources = append(w.sources[:0], w.config.SeekerBounds().Center())
}

// EffectiveSources returns the sources the force field uses this tick: the
// pointer for pointer-well modes, the world centre if the host removed every
// source, and the host list otherwise.
func (w *World) EffectiveSources() []common.Vec2 {
	mode := w.config.Gravity
	if w.config.PointerWell && (mode == physics.GravityUniform || mode == physics.GravityRadialTrue) {
		return []common.Vec2{w.target}
	}
	if len(w.sources) == 0 {
		return []common.Vec2{w.config.SeekerBounds().Center()}
	}
	return w.sources
}
