package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation

	// CellAspect is the height of a terminal cell over its width.
	// Most terminal fonts are about twice as tall as they are wide.
	CellAspect float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		CellAspect: 2.0,
	}
}

// AspectRatio returns the viewport width over height in square units.
// Degenerate sizes fall back to 1 so the simulation always gets a positive value.
func (c RuntimeConfig) AspectRatio() float64 {
	cellAspect := c.CellAspect
	if cellAspect <= 0 {
		cellAspect = 1.0
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 1.0
	}
	return float64(c.ScreenW) / (float64(c.ScreenH) * cellAspect)
}

// TickSeconds returns the simulated seconds of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// SceneState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Weather    string  // Name of the weather currently simulated
	Frames     int     // Ticks simulated since the last reset
	SimSeconds float64 // Simulated seconds since the last reset
	Strikes    int     // Lightning strikes since the last reset
	Paused     bool    // Whether the simulation is paused
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState

	// Lightning is set when a lightning bolt struck during this tick.
	Lightning bool
	BoltAngle float64

	// WeatherChanged is set when the tick replaced the weather.
	WeatherChanged bool
}
