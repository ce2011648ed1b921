package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/platform/tui"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick skies from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to watch a sky.
Leaving a sky returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Watch sky
  Tab/H        - Session history
  Q            - Quit

Examples:
  arena-weather menu
  arena-weather menu --fps 60
  arena-weather menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()
	weatherCfg, env, err := loadWeather()
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := terminalRuntime(weatherCfg)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsHistory:
			goBack, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("history failed", "error", err)
				return
			}
			if !goBack {
				return
			}

		default:
			sc, err := registry.Create(menuResult.SceneID, env)
			if err != nil {
				logger.Error("cannot create sky", "error", err)
				continue
			}

			if _, err := tui.Run(sc, store, cfg, logger); err != nil {
				logger.Error("sky failed", "error", err)
				return
			}
		}
	}
}
