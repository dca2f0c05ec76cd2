package prefabs

import (
	"fmt"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/ecs"
	"github.com/milk9111/triangles/ecs/component"
	"github.com/milk9111/triangles/ecs/system"
	"github.com/milk9111/triangles/physics"
	"gopkg.in/yaml.v3"
)

// DefaultSimSpec is the file name the hosts load on start.
const DefaultSimSpec = "sim.yaml"

type SimSpec struct {
	Name       string         `yaml:"name"`
	Gravity    GravitySpec    `yaml:"gravity"`
	World      WorldSpec      `yaml:"world"`
	Population PopulationSpec `yaml:"population"`
	Seeker     SeekerSpec     `yaml:"seeker"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Triggers   TriggerSpec    `yaml:"triggers"`
	Sources    []PointSpec    `yaml:"sources,omitempty"`
}

type GravitySpec struct {
	Mode        physics.GravityMode   `yaml:"mode"`
	Strength    float32               `yaml:"strength"`
	Decay       float32               `yaml:"decay"`
	DecayPolicy component.DecayPolicy `yaml:"decay_policy"`
	PointerWell bool                  `yaml:"pointer_well"`
}

type WorldSpec struct {
	Width         float32                 `yaml:"width"`
	Height        float32                 `yaml:"height"`
	BorderMargin  float32                 `yaml:"border_margin"`
	DespawnMargin float32                 `yaml:"despawn_margin"`
	DespawnPolicy component.DespawnPolicy `yaml:"despawn_policy"`
}

type PopulationSpec struct {
	Seekers     int `yaml:"seekers"`
	Projectiles int `yaml:"projectiles"`
}

type SeekerSpec struct {
	Speed float32 `yaml:"speed"`
}

type ProjectileSpec struct {
	Speed        float32 `yaml:"speed"`
	Radius       float32 `yaml:"radius"`
	MuzzleOffset float32 `yaml:"muzzle_offset"`
	Bounce       bool    `yaml:"bounce"`
}

type TriggerSpec struct {
	Interval int `yaml:"interval"`
}

type PointSpec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// NewSimSpec describes cfg and sources as a spec.
func NewSimSpec(name string, cfg component.Config, sources []common.Vec2) SimSpec {
	spec := SimSpec{
		Name: name,
		Gravity: GravitySpec{
			Mode:        cfg.Gravity,
			Strength:    cfg.FieldStrength,
			Decay:       cfg.Decay,
			DecayPolicy: cfg.DecayPolicy,
			PointerWell: cfg.PointerWell,
		},
		World: WorldSpec{
			Width:         cfg.WorldWidth,
			Height:        cfg.WorldHeight,
			BorderMargin:  cfg.BorderMargin,
			DespawnMargin: cfg.DespawnMargin,
			DespawnPolicy: cfg.DespawnPolicy,
		},
		Population: PopulationSpec{
			Seekers:     cfg.SeekerCap,
			Projectiles: cfg.ProjectileCap,
		},
		Seeker: SeekerSpec{Speed: cfg.SeekerSpeed},
		Projectile: ProjectileSpec{
			Speed:        cfg.ProjectileSpeed,
			Radius:       cfg.ProjectileRadius,
			MuzzleOffset: cfg.MuzzleOffset,
			Bounce:       cfg.Bounce,
		},
		Triggers: TriggerSpec{Interval: cfg.TriggerInterval},
	}
	for _, p := range sources {
		spec.Sources = append(spec.Sources, PointSpec{X: p.X, Y: p.Y})
	}
	return spec
}

// Config converts the spec and validates the result.
func (s SimSpec) Config() (component.Config, error) {
	cfg := component.Config{
		Gravity:          s.Gravity.Mode,
		Decay:            s.Gravity.Decay,
		DecayPolicy:      s.Gravity.DecayPolicy,
		FieldStrength:    s.Gravity.Strength,
		PointerWell:      s.Gravity.PointerWell,
		Bounce:           s.Projectile.Bounce,
		WorldWidth:       s.World.Width,
		WorldHeight:      s.World.Height,
		BorderMargin:     s.World.BorderMargin,
		DespawnMargin:    s.World.DespawnMargin,
		DespawnPolicy:    s.World.DespawnPolicy,
		SeekerCap:        s.Population.Seekers,
		ProjectileCap:    s.Population.Projectiles,
		SeekerSpeed:      s.Seeker.Speed,
		ProjectileSpeed:  s.Projectile.Speed,
		ProjectileRadius: s.Projectile.Radius,
		MuzzleOffset:     s.Projectile.MuzzleOffset,
		TriggerInterval:  s.Triggers.Interval,
	}
	if err := cfg.Validate(); err != nil {
		return component.Config{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

// FieldSources returns the spec's gravity wells in order.
func (s SimSpec) FieldSources() []common.Vec2 {
	out := make([]common.Vec2, 0, len(s.Sources))
	for _, p := range s.Sources {
		out = append(out, common.V(p.X, p.Y))
	}
	return out
}

// DecodeSimSpec parses YAML on top of the default config, so a file only
// needs the keys it changes.
func DecodeSimSpec(data []byte) (SimSpec, error) {
	spec := NewSimSpec("default", component.DefaultConfig(), nil)
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SimSpec{}, err
	}
	return spec, nil
}

func LoadSimSpec(filename string) (SimSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return SimSpec{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := DecodeSimSpec(data)
	if err != nil {
		return SimSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// MarshalSimSpec renders cfg and sources as a spec file.
func MarshalSimSpec(name string, cfg component.Config, sources []common.Vec2) ([]byte, error) {
	return yaml.Marshal(NewSimSpec(name, cfg, sources))
}

// Apply swaps the spec's config into w. When the spec lists sources they
// replace the world's field sources; otherwise the sources are kept.
func (s SimSpec) Apply(w *ecs.World) error {
	cfg, err := s.Config()
	if err != nil {
		return err
	}
	if err := w.ApplyConfig(cfg); err != nil {
		return err
	}
	if len(s.Sources) == 0 {
		return nil
	}
	w.ResetFieldSources()
	for i, p := range s.FieldSources() {
		if err := w.SetFieldSource(i, p); err != nil {
			return err
		}
	}
	return nil
}

// NewWorld builds a simulation configured from s.
func (s SimSpec) NewWorld() (*ecs.World, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	w, err := system.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	for i, p := range s.FieldSources() {
		if err := w.SetFieldSource(i, p); err != nil {
			return nil, err
		}
	}
	return w, nil
}
