package scene

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/arena-weather/internal/weather"
)

// Snapshot captures the scene state for determinism checks and export.
type Snapshot struct {
	Scene       string             `msgpack:"scene"`
	Weather     string             `msgpack:"weather"`
	Seed        int64              `msgpack:"seed"`
	Frames      int                `msgpack:"frames"`
	SimSeconds  float64            `msgpack:"sim_seconds"`
	Strikes     int                `msgpack:"strikes"`
	AspectRatio float64            `msgpack:"aspect_ratio"`
	Particles   []ParticleSnapshot `msgpack:"particles"`
	Lightning   *LightningSnapshot `msgpack:"lightning,omitempty"`
}

// ParticleSnapshot is one particle position with its speed band.
type ParticleSnapshot struct {
	Tier string  `msgpack:"tier"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
}

// LightningSnapshot is the thunderstorm timer state.
type LightningSnapshot struct {
	Active           bool    `msgpack:"active"`
	SecondsSincePrev float64 `msgpack:"seconds_since_prev"` // +Inf before the first strike
	SecondsUntilNext float64 `msgpack:"seconds_until_next"`
	BoltAngle        float64 `msgpack:"bolt_angle"`
}

// Snapshot returns the current scene snapshot.
func (s *WeatherScene) Snapshot() Snapshot {
	snap := Snapshot{
		Scene:       s.id,
		Weather:     s.Definition().String(),
		Seed:        s.cfg.Seed,
		Frames:      s.frames,
		SimSeconds:  s.simSeconds,
		Strikes:     s.strikes,
		AspectRatio: s.cfg.AspectRatio(),
	}
	if s.instance == nil {
		return snap
	}

	tiers := s.instance.Tiers()
	particles := s.instance.Particles()
	snap.Particles = make([]ParticleSnapshot, 0, len(particles))
	for _, t := range []weather.Tier{weather.TierFast, weather.TierMedium, weather.TierSlow} {
		start, end := tiers.Range(t)
		for _, p := range particles[start:end] {
			snap.Particles = append(snap.Particles, ParticleSnapshot{Tier: t.String(), X: p.XPercent, Y: p.YPercent})
		}
	}

	if ts := s.instance.Thunderstorm(); ts != nil {
		snap.Lightning = &LightningSnapshot{
			Active:           ts.Active(),
			SecondsSincePrev: ts.SecondsSincePrevLightning(),
			SecondsUntilNext: ts.SecondsUntilNextLightning(),
			BoltAngle:        ts.LightningBoltAngle(),
		}
	}
	return snap
}

// Fingerprint hashes the particle positions and lightning timers bit for bit.
// Equal fingerprints mean two runs produced the same field.
func (snap Snapshot) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never fails
	}

	for _, p := range snap.Particles {
		put(p.X)
		put(p.Y)
	}
	if l := snap.Lightning; l != nil {
		put(l.SecondsSincePrev)
		put(l.SecondsUntilNext)
		put(l.BoltAngle)
	}
	return h.Sum64()
}

// EncodeSnapshot writes a snapshot as MessagePack.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("scene: encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return snap, fmt.Errorf("scene: decode snapshot: %w", err)
	}
	return snap, nil
}
