package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const weatherFile = "weather.yaml"

// LoadWeather loads and validates the weather configuration.
// Search order: customPath -> ~/.arena-weather/configs/weather.yaml -> ./configs/weather.yaml -> embedded default
func LoadWeather(customPath string) (WeatherConfig, error) {
	cfg, err := loadWeather(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadWeather(customPath string) (WeatherConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultWeatherConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional; broken ones fall through.
	candidates := []string{userConfigPath(weatherFile), filepath.Join("configs", weatherFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	cfg := DefaultWeatherConfig()
	if err := yaml.Unmarshal(defaultWeatherYAML, &cfg); err != nil {
		return DefaultWeatherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (WeatherConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WeatherConfig{}, false
	}
	cfg := DefaultWeatherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WeatherConfig{}, false
	}
	return cfg, true
}

// UserDir returns ~/.arena-weather, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena-weather")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
