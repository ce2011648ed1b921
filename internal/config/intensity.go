package config

import (
	"fmt"
	"strings"
)

// Intensity scales particle counts without touching speeds or timings.
type Intensity int

const (
	IntensityLight Intensity = iota
	IntensityNormal
	IntensityHeavy
)

// String returns the preset name.
func (i Intensity) String() string {
	switch i {
	case IntensityLight:
		return "light"
	case IntensityNormal:
		return "normal"
	case IntensityHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// ParseIntensity converts a preset name into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return IntensityLight, nil
	case "", "normal":
		return IntensityNormal, nil
	case "heavy":
		return IntensityHeavy, nil
	default:
		return IntensityNormal, fmt.Errorf("config: unknown intensity %q (want light, normal or heavy)", s)
	}
}

// ApplyIntensity rescales rain and snow tier counts for a preset.
// Light halves them, heavy doubles them.
func ApplyIntensity(cfg *WeatherConfig, preset Intensity) {
	switch preset {
	case IntensityLight:
		cfg.Rain.Tiers = scaleTiers(cfg.Rain.Tiers, 1, 2)
		cfg.Snow.Tiers = scaleTiers(cfg.Snow.Tiers, 1, 2)
	case IntensityHeavy:
		cfg.Rain.Tiers = scaleTiers(cfg.Rain.Tiers, 2, 1)
		cfg.Snow.Tiers = scaleTiers(cfg.Snow.Tiers, 2, 1)
	}
}

func scaleTiers(t TierCounts, num, den int) TierCounts {
	return TierCounts{
		Fast:   t.Fast * num / den,
		Medium: t.Medium * num / den,
		Slow:   t.Slow * num / den,
	}
}
