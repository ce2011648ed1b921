// Package config provides YAML-based weather configuration loading and
// intensity presets for the weather platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/arena-weather/internal/weather"
)

// WeatherConfig contains all configuration for the weather simulation.
type WeatherConfig struct {
	Reference    ReferenceConfig    `yaml:"reference"`
	Rain         RainConfig         `yaml:"rain"`
	Snow         SnowConfig         `yaml:"snow"`
	Thunderstorm ThunderstormConfig `yaml:"thunderstorm"`
	Display      DisplayConfig      `yaml:"display"`
}

// ReferenceConfig is the screen the particle speeds were tuned on.
type ReferenceConfig struct {
	ScreenWidth     int `yaml:"screen_width"`
	ScreenHeight    int `yaml:"screen_height"`
	FramesPerSecond int `yaml:"frames_per_second"`
}

// AspectRatio returns the reference screen width over height.
func (r ReferenceConfig) AspectRatio() float64 {
	return float64(r.ScreenWidth) / float64(r.ScreenHeight)
}

// TierCounts is the number of particles per speed band.
type TierCounts struct {
	Fast   int `yaml:"fast"`
	Medium int `yaml:"medium"`
	Slow   int `yaml:"slow"`
}

// PixelVelocity is a speed in reference pixels per reference frame.
type PixelVelocity struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RainConfig defines raindrop counts and speeds.
type RainConfig struct {
	Tiers  TierCounts    `yaml:"tiers"`
	Fast   PixelVelocity `yaml:"fast"`
	Medium PixelVelocity `yaml:"medium"`
	Slow   PixelVelocity `yaml:"slow"`
}

// SnowConfig defines snowflake counts, speeds and drift.
type SnowConfig struct {
	Tiers           TierCounts `yaml:"tiers"`
	PixelsPerFrameX int        `yaml:"pixels_per_frame_x"` // Shared by all tiers
	FastY           int        `yaml:"fast_y"`
	MediumY         int        `yaml:"medium_y"`
	SlowY           int        `yaml:"slow_y"`

	MinSecondsBeforeDirectionChange float64 `yaml:"min_seconds_before_direction_change"`
	DirectionChangeChance           float64 `yaml:"direction_change_chance"` // 0.0 = never, 1.0 = every chance
}

// ThunderstormConfig defines lightning timings and the sky flash palette.
type ThunderstormConfig struct {
	SkyFlashSeconds float64 `yaml:"sky_flash_seconds"`
	BoltSeconds     float64 `yaml:"bolt_seconds"`
	JitterSeconds   float64 `yaml:"jitter_seconds"`
	FlashColors     []int   `yaml:"flash_colors"` // 256-colour palette indices
}

// DisplayConfig defines terminal presentation settings.
type DisplayConfig struct {
	CellAspect float64 `yaml:"cell_aspect"` // Cell height over cell width
}

// FlashPalette returns the thunderstorm palette as 8-bit indices.
// Call Validate first; out-of-range entries are truncated.
func (c *WeatherConfig) FlashPalette() []uint8 {
	palette := make([]uint8, len(c.Thunderstorm.FlashColors))
	for i, idx := range c.Thunderstorm.FlashColors {
		palette[i] = uint8(idx)
	}
	return palette
}

// Params derives the simulation constants. The config must be valid.
func (c *WeatherConfig) Params() *weather.Params {
	ref := c.Reference
	width := float64(ref.ScreenWidth)
	height := float64(ref.ScreenHeight)
	fps := ref.FramesPerSecond

	rainVelocity := func(v PixelVelocity) weather.Velocity {
		return weather.Velocity{
			X: weather.VelocityPercent(v.X, fps, width),
			Y: weather.VelocityPercent(v.Y, fps, height),
		}
	}

	return &weather.Params{
		ReferenceAspectRatio: ref.AspectRatio(),

		RainTiers: weather.Tiers(c.Rain.Tiers),
		RainVelocities: [3]weather.Velocity{
			weather.TierFast:   rainVelocity(c.Rain.Fast),
			weather.TierMedium: rainVelocity(c.Rain.Medium),
			weather.TierSlow:   rainVelocity(c.Rain.Slow),
		},

		SnowTiers:     weather.Tiers(c.Snow.Tiers),
		SnowVelocityX: weather.VelocityPercent(c.Snow.PixelsPerFrameX, fps, width),
		SnowVelocitiesY: [3]float64{
			weather.TierFast:   weather.VelocityPercent(c.Snow.FastY, fps, height),
			weather.TierMedium: weather.VelocityPercent(c.Snow.MediumY, fps, height),
			weather.TierSlow:   weather.VelocityPercent(c.Snow.SlowY, fps, height),
		},
		SnowMinSecondsBeforeDirectionChange: c.Snow.MinSecondsBeforeDirectionChange,
		SnowDirectionPolicy:                 weather.ChancePolicy(c.Snow.DirectionChangeChance),

		ThunderstormSkyFlashSeconds: c.Thunderstorm.SkyFlashSeconds,
		ThunderstormBoltSeconds:     c.Thunderstorm.BoltSeconds,
		ThunderstormJitterSeconds:   c.Thunderstorm.JitterSeconds,
	}
}

// Validate checks that the config can drive a simulation.
func (c *WeatherConfig) Validate() error {
	ref := c.Reference
	if ref.ScreenWidth <= 0 || ref.ScreenHeight <= 0 {
		return fmt.Errorf("config: reference screen must be positive, got %dx%d", ref.ScreenWidth, ref.ScreenHeight)
	}
	if ref.FramesPerSecond <= 0 {
		return fmt.Errorf("config: reference frames_per_second must be positive, got %d", ref.FramesPerSecond)
	}

	if err := validateTiers("rain", c.Rain.Tiers); err != nil {
		return err
	}
	if err := validateTiers("snow", c.Snow.Tiers); err != nil {
		return err
	}

	if c.Snow.MinSecondsBeforeDirectionChange <= 0 {
		return fmt.Errorf("config: snow min_seconds_before_direction_change must be positive, got %v",
			c.Snow.MinSecondsBeforeDirectionChange)
	}
	if chance := c.Snow.DirectionChangeChance; chance < 0 || chance > 1 {
		return fmt.Errorf("config: snow direction_change_chance must be within [0, 1], got %v", chance)
	}

	ts := c.Thunderstorm
	if ts.SkyFlashSeconds <= 0 {
		return fmt.Errorf("config: thunderstorm sky_flash_seconds must be positive, got %v", ts.SkyFlashSeconds)
	}
	if ts.BoltSeconds < 0 || ts.JitterSeconds < 0 {
		return fmt.Errorf("config: thunderstorm bolt_seconds and jitter_seconds must not be negative")
	}
	if len(ts.FlashColors) == 0 {
		return fmt.Errorf("config: thunderstorm flash_colors must not be empty")
	}
	for i, idx := range ts.FlashColors {
		if idx < 0 || idx > 255 {
			return fmt.Errorf("config: thunderstorm flash_colors[%d] = %d is not a palette index", i, idx)
		}
	}

	if c.Display.CellAspect <= 0 {
		return fmt.Errorf("config: display cell_aspect must be positive, got %v", c.Display.CellAspect)
	}
	return nil
}

func validateTiers(name string, t TierCounts) error {
	if t.Fast < 0 || t.Medium < 0 || t.Slow < 0 {
		return fmt.Errorf("config: %s tier counts must not be negative, got %+v", name, t)
	}
	return nil
}
