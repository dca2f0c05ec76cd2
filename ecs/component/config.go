package component

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/triangles/common"
	"github.com/milk9111/triangles/physics"
)

var (
	ErrInvalidDecay  = errors.New("ecs: decay must be in (0, 1]")
	ErrInvalidBounds = errors.New("ecs: world bounds too small")
	ErrInvalidCap    = errors.New("ecs: population cap must be positive")
	ErrInvalidTuning = errors.New("ecs: invalid tuning value")
	ErrInvalidMode   = errors.New("ecs: invalid gravity mode")
)

// DecayPolicy decides when per-tick drag is applied to projectiles.
type DecayPolicy uint8

const (
	// DecayWhenForced applies drag only while a gravity mode is active.
	DecayWhenForced DecayPolicy = iota
	// DecayAlways applies drag every tick, gravity or not.
	DecayAlways
)

func (p DecayPolicy) String() string {
	switch p {
	case DecayWhenForced:
		return "when_forced"
	case DecayAlways:
		return "always"
	default:
		return fmt.Sprintf("decay_policy(%d)", uint8(p))
	}
}

func (p DecayPolicy) MarshalText() ([]byte, error) {
	if p > DecayAlways {
		return nil, fmt.Errorf("ecs: invalid decay policy %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *DecayPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "when_forced", "":
		*p = DecayWhenForced
	case "always":
		*p = DecayAlways
	default:
		return fmt.Errorf("ecs: unknown decay policy %q", string(text))
	}
	return nil
}

// DespawnPolicy decides what happens to a projectile leaving the world while
// bounce is off.
type DespawnPolicy uint8

const (
	// DespawnMargin removes a projectile once it is DespawnMargin beyond the
	// world edge, without clamping it first.
	DespawnMargin DespawnPolicy = iota
	// DespawnClamp clamps and reflects at the border, then removes.
	DespawnClamp
)

func (p DespawnPolicy) String() string {
	switch p {
	case DespawnMargin:
		return "margin"
	case DespawnClamp:
		return "clamp"
	default:
		return fmt.Sprintf("despawn_policy(%d)", uint8(p))
	}
}

func (p DespawnPolicy) MarshalText() ([]byte, error) {
	if p > DespawnClamp {
		return nil, fmt.Errorf("ecs: invalid despawn policy %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *DespawnPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "margin", "":
		*p = DespawnMargin
	case "clamp":
		*p = DespawnClamp
	default:
		return fmt.Errorf("ecs: unknown despawn policy %q", string(text))
	}
	return nil
}

// Config is the process-wide simulation configuration. The World owns one
// copy and swaps it only between ticks.
type Config struct {
	Gravity     physics.GravityMode
	Decay       float32
	DecayPolicy DecayPolicy
	Bounce      bool

	WorldWidth    float32
	WorldHeight   float32
	BorderMargin  float32
	DespawnMargin float32
	DespawnPolicy DespawnPolicy

	SeekerCap     int
	ProjectileCap int

	FieldStrength    float32
	SeekerSpeed      float32
	ProjectileSpeed  float32
	ProjectileRadius float32
	MuzzleOffset     float32

	// PointerWell makes Uniform and RadialTrue pull toward the tick's target
	// point instead of the primary field source.
	PointerWell bool

	// TriggerInterval is the cadence, in ticks, of held spawn/remove/fire.
	TriggerInterval int
}

func DefaultConfig() Config {
	return Config{
		Gravity:          physics.GravityOff,
		Decay:            0.99,
		DecayPolicy:      DecayWhenForced,
		Bounce:           false,
		WorldWidth:       common.BaseWidth,
		WorldHeight:      common.BaseHeight,
		BorderMargin:     12,
		DespawnMargin:    12,
		DespawnPolicy:    DespawnMargin,
		SeekerCap:        500,
		ProjectileCap:    10000,
		FieldStrength:    physics.DefaultFieldStrength,
		SeekerSpeed:      4,
		ProjectileSpeed:  10,
		ProjectileRadius: 8,
		MuzzleOffset:     40,
		PointerWell:      false,
		TriggerInterval:  4,
	}
}

// Validate reports the first constraint c violates.
func (c Config) Validate() error {
	if !(c.Decay > 0 && c.Decay <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidDecay, c.Decay)
	}
	if !c.Gravity.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, uint8(c.Gravity))
	}
	if c.BorderMargin < 0 || c.ProjectileRadius < 0 || c.DespawnMargin < 0 {
		return fmt.Errorf("%w: margins and radius must not be negative", ErrInvalidTuning)
	}
	inset := 2 * (c.BorderMargin + c.ProjectileRadius)
	if !(c.WorldWidth > inset && c.WorldHeight > inset) {
		return fmt.Errorf("%w: %vx%v with inset %v", ErrInvalidBounds, c.WorldWidth, c.WorldHeight, inset)
	}
	if c.SeekerCap <= 0 || c.ProjectileCap <= 0 {
		return fmt.Errorf("%w: seekers=%d projectiles=%d", ErrInvalidCap, c.SeekerCap, c.ProjectileCap)
	}
	if !(c.FieldStrength > 0) {
		return fmt.Errorf("%w: field strength %v", ErrInvalidTuning, c.FieldStrength)
	}
	if !(c.SeekerSpeed > 0) || !(c.ProjectileSpeed > 0) || c.MuzzleOffset < 0 {
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidTuning)
	}
	if c.TriggerInterval <= 0 {
		return fmt.Errorf("%w: trigger interval %d", ErrInvalidTuning, c.TriggerInterval)
	}
	return nil
}

// SeekerBounds is the box seekers are clamped to.
func (c Config) SeekerBounds() physics.Bounds {
	return physics.NewBounds(c.WorldWidth, c.WorldHeight, c.BorderMargin)
}

// ProjectileBounds is the box bouncing projectiles reflect inside.
func (c Config) ProjectileBounds() physics.Bounds {
	return physics.NewBounds(c.WorldWidth, c.WorldHeight, c.BorderMargin+c.ProjectileRadius)
}

// DespawnBounds is the outer box beyond which non-bouncing projectiles are
// removed under DespawnMargin.
func (c Config) DespawnBounds() physics.Bounds {
	return physics.NewBounds(c.WorldWidth, c.WorldHeight, 0).Grow(c.DespawnMargin)
}

// DecayFactor returns the velocity multiplier for one tick.
func (c Config) DecayFactor() float32 {
	if c.Gravity == physics.GravityOff && c.DecayPolicy == DecayWhenForced {
		return 1
	}
	return c.Decay
}
