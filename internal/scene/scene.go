// Package scene implements the weather scenes of the platform: a sky with
// one weather instance that can be paused, cycled and lit by lightning.
package scene

import (
	"math/rand"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/weather"
)

// Cycle is the order ActionNextWeather walks through.
var Cycle = []weather.Definition{
	weather.Clear(),
	weather.Overcast(),
	weather.RainDefinition(false),
	weather.RainDefinition(true),
	weather.SnowDefinition(),
}

var titles = map[string]string{
	"clear":        "Clear Sky",
	"overcast":     "Overcast",
	"rain":         "Rain",
	"thunderstorm": "Thunderstorm",
	"snow":         "Snow",
}

func init() {
	for i, def := range Cycle {
		id := def.String()
		start := i
		registry.Register(id, func(env registry.Env) registry.Scene {
			return New(id, start, env)
		})
	}
}

// WeatherScene simulates one sky.
type WeatherScene struct {
	id         string
	startIndex int
	env        registry.Env

	rng      *rand.Rand
	cfg      core.RuntimeConfig
	defIndex int
	instance *weather.Instance

	frames     int
	simSeconds float64
	strikes    int
	paused     bool
}

// New creates a scene that starts on Cycle[startIndex].
func New(id string, startIndex int, env registry.Env) *WeatherScene {
	return &WeatherScene{
		id:         id,
		startIndex: startIndex,
		env:        env,
		cfg:        core.DefaultConfig(),
	}
}

// ID returns the scene identifier.
func (s *WeatherScene) ID() string {
	return s.id
}

// Title returns the display name.
func (s *WeatherScene) Title() string {
	if t, ok := titles[s.id]; ok {
		return t
	}
	return s.id
}

// Reset reseeds the RNG and rebuilds the starting weather.
func (s *WeatherScene) Reset(cfg core.RuntimeConfig) {
	s.cfg = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.defIndex = s.startIndex
	s.frames = 0
	s.simSeconds = 0
	s.strikes = 0
	s.paused = false
	s.rebuild()
}

// Resize changes the viewport. Particles live in viewport fractions, so the
// weather carries on with the new aspect ratio.
func (s *WeatherScene) Resize(width, height int) {
	s.cfg.ScreenW = width
	s.cfg.ScreenH = height
}

// rebuild replaces the instance with a fresh one for the current definition.
func (s *WeatherScene) rebuild() {
	s.instance = weather.NewInstance(s.Definition(), s.env.FlashColors, s.env.Params, s.rng)
	if ts := s.instance.Thunderstorm(); ts != nil {
		ts.SetActive(true)
	}
}

// Definition returns the weather currently simulated.
func (s *WeatherScene) Definition() weather.Definition {
	return Cycle[s.defIndex]
}

// Instance returns the live weather. It is replaced on every weather change.
func (s *WeatherScene) Instance() *weather.Instance {
	return s.instance
}

// Step advances the simulation by one tick.
func (s *WeatherScene) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.Has(core.ActionNextWeather) {
		s.defIndex = (s.defIndex + 1) % len(Cycle)
		s.rebuild()
		res.WeatherChanged = true
	}
	if in.Has(core.ActionToggleLightning) {
		if ts := s.instance.Thunderstorm(); ts != nil {
			ts.SetActive(!ts.Active())
		}
	}

	if !s.paused {
		dt := s.cfg.TickSeconds()
		evt := s.instance.Update(dt, s.cfg.AspectRatio(), s.rng)
		s.frames++
		s.simSeconds += dt
		if evt.Lightning {
			s.strikes++
			res.Lightning = true
			res.BoltAngle = evt.BoltAngle
		}
	}

	res.State = s.State()
	return res
}

// State returns the current scene state.
func (s *WeatherScene) State() core.SceneState {
	return core.SceneState{
		Weather:    s.Definition().String(),
		Frames:     s.frames,
		SimSeconds: s.simSeconds,
		Strikes:    s.strikes,
		Paused:     s.paused,
	}
}
