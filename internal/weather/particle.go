package weather

// Particle is a raindrop or snowflake position in viewport fractions.
// (0, 0) is the top-left corner and (1, 1) the bottom-right.
type Particle struct {
	XPercent float64
	YPercent float64
}

// field is the tiered particle storage shared by rain and snow.
type field struct {
	particles []Particle
	tiers     Tiers
}

// newField allocates the particles and places each one at a uniform random
// position. X is drawn before Y for every particle.
func newField(tiers Tiers, r Random) field {
	particles := make([]Particle, tiers.Total())
	for i := range particles {
		x := r.Float64()
		y := r.Float64()
		particles[i] = Particle{XPercent: x, YPercent: y}
	}
	return field{particles: particles, tiers: tiers}
}

// Particles returns all particles, fast tier first.
// The returned slice aliases the field; callers must not modify it.
func (f *field) Particles() []Particle {
	return f.particles
}

// Tier returns the particles of one speed band.
func (f *field) Tier(t Tier) []Particle {
	start, end := f.tiers.Range(t)
	return f.particles[start:end]
}

// Tiers returns the tier layout of the field.
func (f *field) Tiers() Tiers {
	return f.tiers
}
