package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default weather config",
	Long: `Print the built-in weather YAML. With --init it is written to
~/.arena-weather/configs/weather.yaml, which is loaded on every run
unless --config points elsewhere.

Examples:
  arena-weather config > my-weather.yaml
  arena-weather config --init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the defaults to the user config directory")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagInit {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	dir := config.UserDir()
	if dir == "" {
		exitf("cannot determine home directory")
	}
	path := filepath.Join(dir, "configs", "weather.yaml")

	if _, err := os.Stat(path); err == nil {
		exitf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		exitf("creating config directory: %v", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		exitf("writing config: %v", err)
	}
	fmt.Printf("Wrote %s\n", path)
}
