// arena-weather simulates the rain, snow and thunderstorm skies of a
// retro first-person RPG in the terminal.
//
// Usage:
//
//	arena-weather list               - List available skies
//	arena-weather watch <sky>        - Watch a sky
//	arena-weather menu               - Pick skies interactively
//	arena-weather simulate <sky>     - Run a sky headless and print statistics
//	arena-weather history [sky]      - Show recorded sessions
//	arena-weather serve              - Start SSH server for remote viewing
//	arena-weather location wild-seed - Derive a wilderness dungeon seed
//	arena-weather config             - Print the default weather config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible skies
//	--db <path>           - Set database path (default: ~/.arena-weather/history.db)
//	--config <path>       - Use a custom weather YAML
//	--intensity <preset>  - light, normal or heavy
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-weather/internal/config"
	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"

	// Import scenes to register them
	_ "github.com/vovakirdan/arena-weather/internal/scene"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfig    string
	flagIntensity string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena-weather",
	Short: "Arena Weather - rain, snow and lightning in your terminal",
	Long: `Arena Weather simulates the sky of a retro first-person RPG:
falling rain in three speed bands, thunderstorms with sky flashes and
lightning bolts, and drifting snow.

Available commands:
  list      - Show all available skies
  watch     - Watch a specific sky
  menu      - Interactive sky picker
  simulate  - Run a sky headless and print statistics
  history   - View recorded sessions
  serve     - Start SSH server for remote viewing
  location  - World map location helpers
  config    - Print or install the default weather config

Examples:
  arena-weather list
  arena-weather watch thunderstorm
  arena-weather watch snow --intensity heavy
  arena-weather simulate rain --frames 900 --seed 42
  arena-weather serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena-weather/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom weather config YAML")
	rootCmd.PersistentFlags().StringVar(&flagIntensity, "intensity", "normal", "Particle intensity: light, normal, heavy")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(locationCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena-weather",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadWeather loads the weather config named by the global flags.
func loadWeather() (config.WeatherConfig, registry.Env, error) {
	cfg, err := config.LoadWeather(flagConfig)
	if err != nil {
		return cfg, registry.Env{}, err
	}

	intensity, err := config.ParseIntensity(flagIntensity)
	if err != nil {
		return cfg, registry.Env{}, err
	}
	config.ApplyIntensity(&cfg, intensity)

	return cfg, registry.NewEnv(cfg), nil
}

// terminalRuntime builds the runtime config for the current terminal.
func terminalRuntime(cfg config.WeatherConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		CellAspect: cfg.Display.CellAspect,
	}
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
