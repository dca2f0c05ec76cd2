package physics

import (
	"fmt"
	"strings"
)

// GravityMode selects the force law applied to projectiles.
type GravityMode uint8

const (
	GravityOff GravityMode = iota
	GravityUniform
	GravityRadialTrue
	GravityRadialCapped
	GravityMultiPoint

	gravityModeCount
)

var gravityModeNames = [...]string{
	GravityOff:          "off",
	GravityUniform:      "uniform",
	GravityRadialTrue:   "radial_true",
	GravityRadialCapped: "radial_capped",
	GravityMultiPoint:   "multi_point",
}

func (m GravityMode) String() string {
	if m >= gravityModeCount {
		return fmt.Sprintf("gravity(%d)", uint8(m))
	}
	return gravityModeNames[m]
}

// Valid reports whether m is one of the known modes.
func (m GravityMode) Valid() bool {
	return m < gravityModeCount
}

// Next returns the following mode, wrapping from MultiPoint back to Off.
func (m GravityMode) Next() GravityMode {
	return (m + 1) % gravityModeCount
}

// PointBased reports whether the mode pulls toward field sources.
func (m GravityMode) PointBased() bool {
	return m != GravityOff && m.Valid()
}

// ParseGravityMode accepts the names produced by String, case-insensitively.
func ParseGravityMode(s string) (GravityMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range gravityModeNames {
		if n == name {
			return GravityMode(i), nil
		}
	}
	return GravityOff, fmt.Errorf("physics: unknown gravity mode %q", s)
}

func (m GravityMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("physics: invalid gravity mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *GravityMode) UnmarshalText(text []byte) error {
	parsed, err := ParseGravityMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
