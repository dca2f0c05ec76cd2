package system

import (
	"strings"
	"testing"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/physics"
)

const testPilotScript = `
update := func(engine, state) {
	if is_undefined(state.count) {
		state.count = 0
	}
	state.count = state.count + 1

	size := engine.size()
	engine.aim(size[0] / 4.0, size[1] / 2.0)
	engine.hold("fire")
	engine.hold("orbit_cw")
	if engine.seekers() == 0 {
		engine.hold("spawn")
	}
	if state.count == 2 {
		engine.set_gravity("multi_point")
		engine.add_well(100, 200)
	}
}
`

func TestScriptPilotStep(t *testing.T) {
	w := newTestSimulation(t, nil)
	pilot, err := NewScriptPilot("test", []byte(testPilotScript))
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}

	frame, err := pilot.Step(w)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if frame.Target != common.V(400, 400) {
		t.Fatalf("expected target (400, 400), got %+v", frame.Target)
	}
	if !frame.Input.FireHeld || !frame.Input.OrbitCW || !frame.Input.SpawnHeld || frame.Input.Approach {
		t.Fatalf("unexpected input %+v", frame.Input)
	}
	if frame.SetGravity || len(frame.Wells) != 0 {
		t.Fatalf("first frame should not change gravity")
	}

	frame, err = pilot.Step(w)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !frame.SetGravity || frame.Gravity != physics.GravityMultiPoint {
		t.Fatalf("second frame should set multi_point, got %+v", frame)
	}
	if len(frame.Wells) != 1 || frame.Wells[0] != common.V(100, 200) {
		t.Fatalf("expected one well at (100, 200), got %+v", frame.Wells)
	}

	count, ok := pilot.state.Value["count"].(*tengo.Int)
	if !ok || count.Value != 2 {
		t.Fatalf("script state should persist between frames, got %v", pilot.state.Value["count"])
	}

	if err := frame.Apply(w); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if w.Config().Gravity != physics.GravityMultiPoint {
		t.Fatalf("expected multi_point after Apply, got %v", w.Config().Gravity)
	}
	if len(w.FieldSources()) != 2 {
		t.Fatalf("expected 2 field sources, got %d", len(w.FieldSources()))
	}
}

func TestScriptPilotErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		compile bool
	}{
		{"syntax", "update := func(engine, state) {", true},
		{"missing_update", "x := 1", true},
		{"bad_gravity", `update := func(engine, state) { engine.set_gravity("sideways") }`, false},
		{"runtime", `update := func(engine, state) { engine.nope() }`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pilot, err := NewScriptPilot(c.name, []byte(c.src))
			if c.compile {
				if err == nil {
					t.Fatalf("expected compile error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewScriptPilot: %v", err)
			}
			_, err = pilot.Step(newTestSimulation(t, nil))
			if err == nil || !strings.Contains(err.Error(), c.name) {
				t.Fatalf("expected step error naming the script, got %v", err)
			}
		})
	}
}

func TestPilotDrivesWorld(t *testing.T) {
	w := newTestSimulation(t, nil)
	pilot, err := NewScriptPilot("drive", []byte(testPilotScript))
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}
	for i := 0; i < 40; i++ {
		frame, err := pilot.Step(w)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if err := frame.Apply(w); err != nil {
			t.Fatalf("Apply %d: %v", i, err)
		}
		w.Tick(frame.Input, frame.Target)
	}
	if w.SeekerCount() != 1 {
		t.Fatalf("expected one seeker, got %d", w.SeekerCount())
	}
	if w.ProjectileCount() == 0 {
		t.Fatalf("expected the pilot to have fired")
	}
}
