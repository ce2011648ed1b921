// Package weather simulates precipitation particle fields for the sky:
// rain (optionally a thunderstorm) and snow.
//
// The simulation is frame-stepped and fully deterministic. Every random draw
// comes from a caller-owned Random and happens in a fixed order: tiers fast,
// medium, slow, particles in index order within a tier, thunderstorm last.
// Two instances built from the same seed and fed the same dt/aspect sequence
// produce identical fields.
//
// The package has no terminal or rendering dependencies. Positions are fractions of the viewport and drawing is left
// to the caller.
package weather

import (
	"fmt"
	"strings"
)

// Random is the sequential random source consumed by the simulation.
// *math/rand.Rand satisfies it.
type Random interface {
	// Float64 returns a uniform real in [0, 1).
	Float64() float64

	// Int returns a non-negative pseudo-random integer.
	Int() int
}

// DefinitionKind identifies the weather requested by the world.
type DefinitionKind int

const (
	DefinitionClear DefinitionKind = iota
	DefinitionOvercast
	DefinitionRain
	DefinitionSnow
)

// String returns the lowercase name of the definition kind.
func (k DefinitionKind) String() string {
	switch k {
	case DefinitionClear:
		return "clear"
	case DefinitionOvercast:
		return "overcast"
	case DefinitionRain:
		return "rain"
	case DefinitionSnow:
		return "snow"
	default:
		return fmt.Sprintf("DefinitionKind(%d)", int(k))
	}
}

// Definition describes the weather to simulate.
// Thunderstorm is only meaningful for DefinitionRain.
type Definition struct {
	Kind         DefinitionKind
	Thunderstorm bool
}

// Clear returns a clear-sky definition.
func Clear() Definition { return Definition{Kind: DefinitionClear} }

// Overcast returns an overcast definition.
func Overcast() Definition { return Definition{Kind: DefinitionOvercast} }

// RainDefinition returns a rain definition, optionally a thunderstorm.
func RainDefinition(thunderstorm bool) Definition {
	return Definition{Kind: DefinitionRain, Thunderstorm: thunderstorm}
}

// SnowDefinition returns a snow definition.
func SnowDefinition() Definition { return Definition{Kind: DefinitionSnow} }

// String returns the canonical name used by the CLI and history records.
func (d Definition) String() string {
	if d.Kind == DefinitionRain && d.Thunderstorm {
		return "thunderstorm"
	}
	return d.Kind.String()
}

// ParseDefinition converts a name produced by Definition.String back into a Definition.
func ParseDefinition(name string) (Definition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clear":
		return Clear(), nil
	case "overcast":
		return Overcast(), nil
	case "rain":
		return RainDefinition(false), nil
	case "thunderstorm":
		return RainDefinition(true), nil
	case "snow":
		return SnowDefinition(), nil
	default:
		return Definition{}, fmt.Errorf("weather: unknown definition %q", name)
	}
}

// Event reports what happened during one Update call.
type Event struct {
	// Lightning is true when a thunderstorm flash triggered this frame.
	Lightning bool

	// BoltAngle is the new bolt angle in radians when Lightning is true.
	BoltAngle float64
}
