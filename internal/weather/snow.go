package weather

import "math"

// snowVelocityCorrectionX halves the horizontal drift of snowflakes.
const snowVelocityCorrectionX = 0.50

// DirectionPolicy decides whether a snowflake that has kept its direction
// long enough turns around.
type DirectionPolicy interface {
	ShouldChangeDirection(r Random) bool
}

// DirectionPolicyFunc adapts a function to DirectionPolicy.
type DirectionPolicyFunc func(r Random) bool

// ShouldChangeDirection calls f(r).
func (f DirectionPolicyFunc) ShouldChangeDirection(r Random) bool {
	return f(r)
}

// ChancePolicy turns a snowflake around with a fixed probability.
// It consumes exactly one Float64 draw per call.
type ChancePolicy float64

// ShouldChangeDirection reports true with probability c.
func (c ChancePolicy) ShouldChangeDirection(r Random) bool {
	return r.Float64() < float64(c)
}

// makeSnowflakeDirection flips a coin. True means moving right.
func makeSnowflakeDirection(r Random) bool {
	return r.Int()%2 != 0
}

// Snow is a drifting snowflake field.
type Snow struct {
	field
	params *Params

	// Parallel to particles.
	directions                 []bool
	lastDirectionChangeSeconds []float64
}

func newSnow(p *Params, r Random) *Snow {
	snow := &Snow{
		field:  newField(p.SnowTiers, r),
		params: p,
	}

	n := len(snow.particles)
	snow.directions = make([]bool, n)
	for i := range snow.directions {
		snow.directions[i] = makeSnowflakeDirection(r)
	}
	snow.lastDirectionChangeSeconds = make([]float64, n)
	return snow
}

// MovingRight reports the horizontal direction of snowflake i.
func (snow *Snow) MovingRight(i int) bool {
	return snow.directions[i]
}

// SecondsSinceDirectionChange returns the direction timer of snowflake i.
func (snow *Snow) SecondsSinceDirectionChange(i int) float64 {
	return snow.lastDirectionChangeSeconds[i]
}

// Update advances every snowflake by dt seconds.
func (snow *Snow) Update(dt, aspectRatio float64, r Random) Event {
	checkAspect(aspectRatio)

	for _, t := range tierOrder {
		snow.animateTier(t, dt, aspectRatio, r)
	}
	return Event{}
}

func (snow *Snow) animateTier(t Tier, dt, aspectRatio float64, r Random) {
	start, end := snow.tiers.Range(t)
	vel := snow.params.snowVelocity(t)
	minSeconds := snow.params.SnowMinSecondsBeforeDirectionChange
	policy := snow.params.SnowDirectionPolicy
	aspectRatioMultiplierX := snow.params.ReferenceAspectRatio / aspectRatio

	for i := start; i < end; i++ {
		p := &snow.particles[i]
		if p.YPercent >= 1.0 {
			// Snow rarely leaves through the sides, so only the top edge spawns.
			p.XPercent = r.Float64()
			p.YPercent = 0.0
			snow.directions[i] = makeSnowflakeDirection(r)
			continue
		}

		// A snowflake gets a chance to turn around a few times a second.
		secondsSinceChange := snow.lastDirectionChangeSeconds[i] + dt
		if secondsSinceChange >= minSeconds {
			secondsSinceChange = math.Mod(secondsSinceChange, minSeconds)
			if policy.ShouldChangeDirection(r) {
				snow.directions[i] = !snow.directions[i]
			}
		}
		snow.lastDirectionChangeSeconds[i] = secondsSinceChange

		directionX := -1.0
		if snow.directions[i] {
			directionX = 1.0
		}

		p.XPercent += (vel.X * directionX * aspectRatioMultiplierX * snowVelocityCorrectionX) * dt
		p.YPercent += vel.Y * dt
	}
}
