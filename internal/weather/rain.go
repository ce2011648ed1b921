package weather

import (
	"math"

	"github.com/vovakirdan/arena-weather/internal/core"
)

// Thunderstorm tracks lightning timing on top of a rain field.
type Thunderstorm struct {
	flashColors []uint8

	secondsSincePrevLightning float64
	secondsUntilNextLightning float64
	lightningBoltAngle        float64
	active                    bool

	skyFlashSeconds float64
	boltSeconds     float64
	jitterSeconds   float64
}

func newThunderstorm(flashColors []uint8, p *Params, r Random) *Thunderstorm {
	ts := &Thunderstorm{
		flashColors:               append([]uint8(nil), flashColors...),
		secondsSincePrevLightning: math.Inf(1),
		skyFlashSeconds:           p.ThunderstormSkyFlashSeconds,
		boltSeconds:               p.ThunderstormBoltSeconds,
		jitterSeconds:             p.ThunderstormJitterSeconds,
	}
	ts.secondsUntilNextLightning = ts.nextLightningDelay(r)
	return ts
}

func (ts *Thunderstorm) nextLightningDelay(r Random) float64 {
	return ts.skyFlashSeconds + r.Float64()*ts.jitterSeconds
}

// SetActive starts or stops the lightning timers.
func (ts *Thunderstorm) SetActive(active bool) {
	ts.active = active
}

// Active reports whether the lightning timers are advancing.
func (ts *Thunderstorm) Active() bool {
	return ts.active
}

// FlashColors returns the sky flash palette, brightest first.
func (ts *Thunderstorm) FlashColors() []uint8 {
	return ts.flashColors
}

// FlashColorCount returns the number of palette entries.
func (ts *Thunderstorm) FlashColorCount() int {
	return len(ts.flashColors)
}

// FlashColor returns one palette entry.
func (ts *Thunderstorm) FlashColor(index int) uint8 {
	return ts.flashColors[index]
}

// FlashPercent returns how bright the sky flash is, from 1 right after a
// strike down to 0 once the sky flash duration has passed.
func (ts *Thunderstorm) FlashPercent() float64 {
	percent := ts.secondsSincePrevLightning / ts.skyFlashSeconds
	return core.ClampF(1.0-percent, 0.0, 1.0)
}

// IsLightningBoltVisible reports whether the bolt of the last strike is still drawn.
func (ts *Thunderstorm) IsLightningBoltVisible() bool {
	return ts.secondsSincePrevLightning <= ts.boltSeconds
}

// LightningBoltAngle returns the angle of the last bolt in radians.
func (ts *Thunderstorm) LightningBoltAngle() float64 {
	return ts.lightningBoltAngle
}

// SecondsSincePrevLightning is +Inf until the first strike.
func (ts *Thunderstorm) SecondsSincePrevLightning() float64 {
	return ts.secondsSincePrevLightning
}

// SecondsUntilNextLightning returns the time left before the next strike.
func (ts *Thunderstorm) SecondsUntilNextLightning() float64 {
	return ts.secondsUntilNextLightning
}

// update advances the timers and reports whether lightning struck.
func (ts *Thunderstorm) update(dt float64, r Random) bool {
	if !ts.active {
		return false
	}

	ts.secondsSincePrevLightning += dt
	ts.secondsUntilNextLightning -= dt
	if ts.secondsUntilNextLightning > 0.0 {
		return false
	}

	ts.secondsSincePrevLightning = 0.0
	ts.secondsUntilNextLightning = ts.nextLightningDelay(r)
	ts.lightningBoltAngle = r.Float64() * 2 * math.Pi
	return true
}

// Rain is a falling raindrop field, optionally with a thunderstorm.
type Rain struct {
	field
	params       *Params
	thunderstorm *Thunderstorm
}

func newRain(thunderstorm bool, flashColors []uint8, p *Params, r Random) *Rain {
	rain := &Rain{
		field:  newField(p.RainTiers, r),
		params: p,
	}
	if thunderstorm {
		rain.thunderstorm = newThunderstorm(flashColors, p, r)
	}
	return rain
}

// Thunderstorm returns the lightning state, or nil for plain rain.
func (rain *Rain) Thunderstorm() *Thunderstorm {
	return rain.thunderstorm
}

// Update advances every raindrop by dt seconds.
func (rain *Rain) Update(dt, aspectRatio float64, r Random) Event {
	checkAspect(aspectRatio)

	for _, t := range tierOrder {
		rain.animateTier(t, dt, aspectRatio, r)
	}

	var evt Event
	if rain.thunderstorm != nil && rain.thunderstorm.update(dt, r) {
		evt.Lightning = true
		evt.BoltAngle = rain.thunderstorm.lightningBoltAngle
	}
	return evt
}

func (rain *Rain) animateTier(t Tier, dt, aspectRatio float64, r Random) {
	start, end := rain.tiers.Range(t)
	vel := rain.params.rainVelocity(t)

	// Spawn edges are weighted by their on-screen length so drops are evenly
	// distributed whatever the viewport shape.
	const rightEdgeLength = 1.0
	topEdgeLength := aspectRatio
	topEdgePercent := topEdgeLength / (topEdgeLength + rightEdgeLength)

	// Horizontal motion depends on the aspect ratio.
	deltaX := vel.X * (rain.params.ReferenceAspectRatio / aspectRatio) * dt
	deltaY := vel.Y * dt

	for i := start; i < end; i++ {
		p := &rain.particles[i]
		if p.XPercent < 0.0 || p.YPercent >= 1.0 {
			if r.Float64() <= topEdgePercent {
				p.XPercent = r.Float64()
				p.YPercent = 0.0
			} else {
				p.XPercent = 1.0
				p.YPercent = r.Float64()
			}
			continue
		}

		p.XPercent += deltaX
		p.YPercent += deltaY
	}
}
