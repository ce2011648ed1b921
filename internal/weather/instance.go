package weather

import "fmt"

// Kind is the active variant of an Instance.
type Kind int

const (
	KindNone Kind = iota
	KindRain
	KindSnow
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRain:
		return "rain"
	case KindSnow:
		return "snow"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Instance is the live weather of the sky. It is built once per weather
// change and replaced wholesale on the next one; it never morphs between
// variants.
//
// Instances are not safe for concurrent use.
type Instance struct {
	kind Kind
	rain *Rain
	snow *Snow
}

// NewInstance builds the simulation for a weather definition.
// flashColors is only used by thunderstorms; it is copied.
// Clear and overcast skies have no particles.
func NewInstance(def Definition, flashColors []uint8, p *Params, r Random) *Instance {
	switch def.Kind {
	case DefinitionClear, DefinitionOvercast:
		return &Instance{kind: KindNone}
	case DefinitionRain:
		p.check(def.Kind)
		return &Instance{kind: KindRain, rain: newRain(def.Thunderstorm, flashColors, p, r)}
	case DefinitionSnow:
		p.check(def.Kind)
		return &Instance{kind: KindSnow, snow: newSnow(p, r)}
	default:
		panic(fmt.Sprintf("weather: unhandled definition kind %d", int(def.Kind)))
	}
}

// Kind returns the active variant.
func (w *Instance) Kind() Kind {
	return w.kind
}

// Rain returns the rain variant. It panics if the instance is not rain.
func (w *Instance) Rain() *Rain {
	if w.kind != KindRain {
		panic(fmt.Sprintf("weather: Rain() called on %s instance", w.kind))
	}
	return w.rain
}

// Snow returns the snow variant. It panics if the instance is not snow.
func (w *Instance) Snow() *Snow {
	if w.kind != KindSnow {
		panic(fmt.Sprintf("weather: Snow() called on %s instance", w.kind))
	}
	return w.snow
}

// Thunderstorm returns the lightning state when the instance is a
// thunderstorm, nil otherwise.
func (w *Instance) Thunderstorm() *Thunderstorm {
	if w.kind != KindRain {
		return nil
	}
	return w.rain.thunderstorm
}

// Particles returns the particles of the active variant, nil for a clear sky.
func (w *Instance) Particles() []Particle {
	switch w.kind {
	case KindRain:
		return w.rain.particles
	case KindSnow:
		return w.snow.particles
	default:
		return nil
	}
}

// Tiers returns the tier layout of the active variant.
func (w *Instance) Tiers() Tiers {
	switch w.kind {
	case KindRain:
		return w.rain.tiers
	case KindSnow:
		return w.snow.tiers
	default:
		return Tiers{}
	}
}

// Update advances the active variant by dt seconds.
// aspectRatio is the viewport width over height and must be positive.
func (w *Instance) Update(dt, aspectRatio float64, r Random) Event {
	switch w.kind {
	case KindNone:
		return Event{}
	case KindRain:
		return w.rain.Update(dt, aspectRatio, r)
	case KindSnow:
		return w.snow.Update(dt, aspectRatio, r)
	default:
		panic(fmt.Sprintf("weather: unhandled instance kind %d", int(w.kind)))
	}
}
