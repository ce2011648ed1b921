package config

import (
	_ "embed"
)

//go:embed defaults/weather.yaml
var defaultWeatherYAML []byte

// DefaultWeatherConfig returns the default weather configuration.
// It matches defaults/weather.yaml and is used if the embedded file fails to parse.
func DefaultWeatherConfig() WeatherConfig {
	return WeatherConfig{
		Reference: ReferenceConfig{
			ScreenWidth:     320,
			ScreenHeight:    200,
			FramesPerSecond: 25,
		},
		Rain: RainConfig{
			Tiers:  TierCounts{Fast: 100, Medium: 75, Slow: 50},
			Fast:   PixelVelocity{X: -4, Y: 10},
			Medium: PixelVelocity{X: -3, Y: 8},
			Slow:   PixelVelocity{X: -2, Y: 6},
		},
		Snow: SnowConfig{
			Tiers:                           TierCounts{Fast: 80, Medium: 60, Slow: 40},
			PixelsPerFrameX:                 1,
			FastY:                           3,
			MediumY:                         2,
			SlowY:                           1,
			MinSecondsBeforeDirectionChange: 0.25,
			DirectionChangeChance:           0.25,
		},
		Thunderstorm: ThunderstormConfig{
			SkyFlashSeconds: 1.0,
			BoltSeconds:     0.25,
			JitterSeconds:   5.0,
			FlashColors:     []int{231, 255, 254, 253, 251, 249, 247, 245, 243, 241, 239, 237},
		},
		Display: DisplayConfig{
			CellAspect: 2.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWeatherYAML
}
