package weather

import "fmt"

// Tier is a speed band of a particle field.
type Tier int

const (
	TierFast Tier = iota
	TierMedium
	TierSlow
)

// tierOrder is the traversal order of every update. Changing it changes the
// random draw order and breaks reproducibility.
var tierOrder = [...]Tier{TierFast, TierMedium, TierSlow}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierMedium:
		return "medium"
	case TierSlow:
		return "slow"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Tiers holds the particle count of each speed band.
// Particles are laid out contiguously: fast first, then medium, then slow.
type Tiers struct {
	Fast   int
	Medium int
	Slow   int
}

// Total returns the number of particles across all tiers.
func (t Tiers) Total() int {
	return t.Fast + t.Medium + t.Slow
}

// Range returns the half-open index range [start, end) of a tier.
func (t Tiers) Range(tier Tier) (start, end int) {
	switch tier {
	case TierFast:
		return 0, t.Fast
	case TierMedium:
		return t.Fast, t.Fast + t.Medium
	case TierSlow:
		return t.Fast + t.Medium, t.Total()
	default:
		panic(fmt.Sprintf("weather: unknown tier %d", int(tier)))
	}
}

// Velocity is a particle speed in viewport fractions per second.
type Velocity struct {
	X float64
	Y float64
}

// VelocityPercent converts a speed in reference pixels per reference frame
// into viewport fractions per second.
func VelocityPercent(pixelsPerFrame, framesPerSecond int, screenDimension float64) float64 {
	return float64(pixelsPerFrame*framesPerSecond) / screenDimension
}

// Params holds every constant the simulation needs. It is computed once at
// startup (see config.WeatherConfig.Params) and shared read-only by instances.
type Params struct {
	// ReferenceAspectRatio is the aspect ratio the velocities were tuned for.
	// Horizontal motion is scaled by ReferenceAspectRatio / aspectRatio.
	ReferenceAspectRatio float64

	RainTiers      Tiers
	RainVelocities [3]Velocity // indexed by Tier

	SnowTiers Tiers
	// SnowVelocityX is shared by all snow tiers.
	SnowVelocityX   float64
	SnowVelocitiesY [3]float64 // indexed by Tier

	// SnowMinSecondsBeforeDirectionChange is how long a snowflake keeps its
	// direction before it gets a chance to change.
	SnowMinSecondsBeforeDirectionChange float64
	SnowDirectionPolicy                 DirectionPolicy

	ThunderstormSkyFlashSeconds float64
	ThunderstormBoltSeconds     float64
	// ThunderstormJitterSeconds is the random extra wait added to the sky
	// flash duration between two lightning strikes.
	ThunderstormJitterSeconds float64
}

// rainVelocity returns the velocity of a rain tier.
func (p *Params) rainVelocity(t Tier) Velocity {
	return p.RainVelocities[t]
}

// snowVelocity returns the velocity of a snow tier.
func (p *Params) snowVelocity(t Tier) Velocity {
	return Velocity{X: p.SnowVelocityX, Y: p.SnowVelocitiesY[t]}
}

// check panics when the params cannot drive a simulation of kind k.
func (p *Params) check(k DefinitionKind) {
	if p.ReferenceAspectRatio <= 0 {
		panic("weather: reference aspect ratio must be positive")
	}
	switch k {
	case DefinitionRain:
		if p.RainTiers.Fast < 0 || p.RainTiers.Medium < 0 || p.RainTiers.Slow < 0 {
			panic(fmt.Sprintf("weather: negative rain tier count %+v", p.RainTiers))
		}
	case DefinitionSnow:
		if p.SnowTiers.Fast < 0 || p.SnowTiers.Medium < 0 || p.SnowTiers.Slow < 0 {
			panic(fmt.Sprintf("weather: negative snow tier count %+v", p.SnowTiers))
		}
		if p.SnowMinSecondsBeforeDirectionChange <= 0 {
			panic("weather: snow direction change interval must be positive")
		}
		if p.SnowDirectionPolicy == nil {
			panic("weather: snow requires a direction policy")
		}
	}
}

// checkAspect panics on a non-positive viewport aspect ratio.
func checkAspect(aspectRatio float64) {
	if !(aspectRatio > 0) {
		panic(fmt.Sprintf("weather: aspect ratio must be positive, got %v", aspectRatio))
	}
}
