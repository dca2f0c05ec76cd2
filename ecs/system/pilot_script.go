package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/physics"
)

// PilotFrame is what a script asked for during one frame. Apply it to the
// world between ticks, then tick with Input and Target.
type PilotFrame struct {
	Input  component.Input
	Target common.Vec2

	Gravity      physics.GravityMode
	SetGravity   bool
	CycleGravity bool
	ToggleBounce bool
	Wells        []common.Vec2
	ClearWells   bool
	ClearAll     bool
}

// Apply performs the frame's config and lifecycle commands on w.
func (f PilotFrame) Apply(w *ecs.World) error {
	if w == nil {
		return nil
	}
	if f.ClearAll {
		w.ClearAll()
	}
	if f.ClearWells {
		w.ResetFieldSources()
	}
	for _, p := range f.Wells {
		w.AddFieldSource(p)
	}
	if f.ToggleBounce {
		w.ToggleBounce()
	}
	if f.CycleGravity {
		w.CycleGravityMode()
	}
	if f.SetGravity {
		if err := w.SetGravityMode(f.Gravity); err != nil {
			return err
		}
	}
	return nil
}

// ScriptPilot drives the simulation from a tengo script. The script defines
// update(engine, state); engine exposes world queries and commands, state is
// a map that persists between frames.
type ScriptPilot struct {
	name     string
	compiled *tengo.Compiled
	state    *tengo.Map
	frame    PilotFrame
	err      error
}

const pilotDispatchScript = `
update(__engine, __state)
`

// NewScriptPilot compiles src. name is only used in errors.
func NewScriptPilot(name string, src []byte) (*ScriptPilot, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + pilotDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pilot: compile %s: %w", name, err)
	}
	return &ScriptPilot{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (p *ScriptPilot) Name() string {
	return p.name
}

// Step runs the script once against the current world state.
func (p *ScriptPilot) Step(w *ecs.World) (PilotFrame, error) {
	if p == nil || p.compiled == nil {
		return PilotFrame{}, fmt.Errorf("pilot: nil script")
	}
	p.frame = PilotFrame{Target: w.Target()}
	p.err = nil

	if err := p.compiled.Set("__engine", p.buildEngine(w)); err != nil {
		return PilotFrame{}, err
	}
	if err := p.compiled.Set("__state", p.state); err != nil {
		return PilotFrame{}, err
	}
	if err := p.compiled.Run(); err != nil {
		return PilotFrame{}, fmt.Errorf("pilot: run %s: %w", p.name, err)
	}
	if p.err != nil {
		return PilotFrame{}, fmt.Errorf("pilot: %s: %w", p.name, p.err)
	}
	return p.frame, nil
}

func (p *ScriptPilot) buildEngine(w *ecs.World) *tengo.ImmutableMap {
	cfg := w.Config()
	values := map[string]tengo.Object{}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.TickCount())}, nil
	}}

	values["size"] = &tengo.UserFunction{Name: "size", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return floatPair(cfg.WorldWidth, cfg.WorldHeight), nil
	}}

	values["seekers"] = &tengo.UserFunction{Name: "seekers", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.SeekerCount())}, nil
	}}

	values["projectiles"] = &tengo.UserFunction{Name: "projectiles", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(w.ProjectileCount())}, nil
	}}

	values["gravity"] = &tengo.UserFunction{Name: "gravity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: cfg.Gravity.String()}, nil
	}}

	values["target"] = &tengo.UserFunction{Name: "target", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return floatPair(p.frame.Target.X, p.frame.Target.Y), nil
	}}

	values["aim"] = &tengo.UserFunction{Name: "aim", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pt, ok := argPoint(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		p.frame.Target = pt
		return tengo.TrueValue, nil
	}}

	values["hold"] = &tengo.UserFunction{Name: "hold", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if !holdCommand(&p.frame.Input, objectAsString(args[0])) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["set_gravity"] = &tengo.UserFunction{Name: "set_gravity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		mode, err := physics.ParseGravityMode(objectAsString(args[0]))
		if err != nil {
			p.err = err
			return tengo.FalseValue, nil
		}
		p.frame.Gravity = mode
		p.frame.SetGravity = true
		return tengo.TrueValue, nil
	}}

	values["cycle_gravity"] = &tengo.UserFunction{Name: "cycle_gravity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p.frame.CycleGravity = true
		return tengo.TrueValue, nil
	}}

	values["toggle_bounce"] = &tengo.UserFunction{Name: "toggle_bounce", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p.frame.ToggleBounce = true
		return tengo.TrueValue, nil
	}}

	values["add_well"] = &tengo.UserFunction{Name: "add_well", Value: func(args ...tengo.Object) (tengo.Object, error) {
		pt, ok := argPoint(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		p.frame.Wells = append(p.frame.Wells, pt)
		return tengo.TrueValue, nil
	}}

	values["reset_wells"] = &tengo.UserFunction{Name: "reset_wells", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p.frame.ClearWells = true
		p.frame.Wells = nil
		return tengo.TrueValue, nil
	}}

	values["clear"] = &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p.frame.ClearAll = true
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func holdCommand(in *component.Input, name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "approach":
		in.Approach = true
	case "retreat":
		in.Retreat = true
	case "orbit_cw":
		in.OrbitCW = true
	case "orbit_ccw":
		in.OrbitCCW = true
	case "fire":
		in.FireHeld = true
	case "spawn":
		in.SpawnHeld = true
	case "remove":
		in.RemoveHeld = true
	default:
		return false
	}
	return true
}

func floatPair(x, y float32) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: float64(x)}, &tengo.Float{Value: float64(y)}}}
}

func argPoint(args []tengo.Object) (common.Vec2, bool) {
	if len(args) < 2 {
		return common.Vec2{}, false
	}
	x, okX := tengo.ToFloat64(args[0])
	y, okY := tengo.ToFloat64(args[1])
	if !okX || !okY {
		return common.Vec2{}, false
	}
	return common.Vec2{X: float32(x), Y: float32(y)}, true
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
