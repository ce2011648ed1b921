package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/platform/tui"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/storage"
)

var watchCmd = &cobra.Command{
	Use:   "watch <sky>",
	Short: "Watch a sky",
	Long: `Watch the specified sky in the terminal.

Controls:
  P/Space    - Pause
  N/Tab      - Next weather
  L          - Toggle lightning (thunderstorm)
  R          - Reseed and rebuild the sky
  Ctrl+S     - Save a text screenshot
  Q/Esc      - Quit

Every run is recorded in the history database, including each
lightning strike.

Examples:
  arena-weather watch rain
  arena-weather watch thunderstorm --seed 42
  arena-weather watch snow --intensity light
  arena-weather watch rain --config ./my-weather.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func runWatch(_ *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown sky %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'arena-weather list' to see available skies.")
		os.Exit(1)
	}

	logger := newLogger()
	weatherCfg, env, err := loadWeather()
	if err != nil {
		exitf("%v", err)
	}

	sc, err := registry.Create(sceneID, env)
	if err != nil {
		exitf("creating sky: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the sky still works
		store = nil
	} else {
		defer store.Close()
	}

	state, err := tui.Run(sc, store, terminalRuntime(weatherCfg), logger)
	if err != nil {
		exitf("%v", err)
	}

	logger.Debug("watch finished", "sky", sceneID, "frames", state.Frames, "strikes", state.Strikes)
}
