package main

import (
	"strings"
	"testing"

	"github.com/milk9111/triangles/prefabs"
)

func TestWanderPilotStaysInBounds(t *testing.T) {
	p := newWanderPilot(7, 800, 600)
	for tick := uint64(0); tick < 2000; tick += 13 {
		got := p.Target(tick)
		if got.X < 0 || got.X > 800 || got.Y < 0 || got.Y > 600 {
			t.Fatalf("tick %d: target %v outside the world", tick, got)
		}
	}
	if a, b := p.Target(100), newWanderPilot(7, 800, 600).Target(100); a != b {
		t.Fatalf("same seed should give the same track, got %v and %v", a, b)
	}
}

func TestWanderPilotInput(t *testing.T) {
	if in := (&wanderPilot{}).Input(10); !in.Approach || in.OrbitCW || !in.FireHeld || !in.SpawnHeld {
		t.Fatalf("unexpected input at tick 10: %+v", in)
	}
	if in := (&wanderPilot{}).Input(100); in.Approach || !in.OrbitCW {
		t.Fatalf("unexpected input at tick 100: %+v", in)
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		script string
	}{
		{"wander", ""},
		{"orbit_swarm", "orbit_swarm"},
		{"wells", "wells"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := run(options{Spec: prefabs.DefaultSimSpec, Script: c.script, Ticks: 120, Seed: 3})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if r.Ticks != 120 || r.Final.Tick != 120 {
				t.Fatalf("expected 120 ticks, got %d (final %d)", r.Ticks, r.Final.Tick)
			}
			if r.MaxSeekers == 0 || r.Events == 0 {
				t.Fatalf("expected activity, got %+v", r)
			}
			for _, name := range []string{"projectiles", "seekers", "compaction", "triggers"} {
				if _, ok := r.Phases[name]; !ok {
					t.Fatalf("missing phase %q in %v", name, r.Phases)
				}
			}
		})
	}

	_, err := run(options{Spec: prefabs.DefaultSimSpec, Script: "missing", Ticks: 1})
	if err == nil {
		t.Fatalf("expected an error for a missing script")
	}
	if !strings.Contains(err.Error(), "orbit_swarm.tengo") {
		t.Fatalf("error should list the embedded scripts, got %v", err)
	}
}
