package main

import (
	"time"

	"github.com/milk9111/triangles/ecs/component"
)

// holdWindow is how long a key counts as held after its last press.
// Terminals only report presses, so held keys are kept alive by auto-repeat.
const holdWindow = 180 * time.Millisecond

type command uint8

const (
	cmdApproach command = iota
	cmdRetreat
	cmdOrbitCW
	cmdOrbitCCW
	cmdFire
	cmdSpawn
	cmdRemove
	commandCount
)

// Holds tracks synthesized held state for each command.
type Holds struct {
	until [commandCount]time.Time
	// mouse buttons report real held state and override the timers
	mouseFire  bool
	mouseSpawn bool
}

func (h *Holds) Press(c command, now time.Time) {
	if c < commandCount {
		h.until[c] = now.Add(holdWindow)
	}
}

func (h *Holds) SetMouse(fire, spawn bool) {
	h.mouseFire = fire
	h.mouseSpawn = spawn
}

func (h *Holds) held(c command, now time.Time) bool {
	return now.Before(h.until[c])
}

// Input returns the command state at now.
func (h *Holds) Input(now time.Time) component.Input {
	return component.Input{
		Approach:   h.held(cmdApproach, now),
		Retreat:    h.held(cmdRetreat, now),
		OrbitCW:    h.held(cmdOrbitCW, now),
		OrbitCCW:   h.held(cmdOrbitCCW, now),
		FireHeld:   h.mouseFire || h.held(cmdFire, now),
		SpawnHeld:  h.mouseSpawn || h.held(cmdSpawn, now),
		RemoveHeld: h.held(cmdRemove, now),
	}
}
