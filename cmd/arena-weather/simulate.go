package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/scene"
	"github.com/vovakirdan/arena-weather/internal/storage"
	"github.com/vovakirdan/arena-weather/internal/weather"
)

var (
	flagFrames   int
	flagWidth    int
	flagHeight   int
	flagSnapshot string
	flagRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <sky>",
	Short: "Run a sky headless and print statistics",
	Long: `Advance a sky for a fixed number of frames without a terminal UI and
print per-tier particle statistics, lightning timings and a state
fingerprint. Two runs with the same seed, size and config print the
same fingerprint.

Examples:
  arena-weather simulate rain --frames 900 --seed 42
  arena-weather simulate thunderstorm --frames 3000 --record
  arena-weather simulate snow --snapshot snow.msgpack`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagFrames, "frames", "n", 600, "Number of frames to simulate")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Viewport width in cells")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Viewport height in cells")
	simulateCmd.Flags().StringVar(&flagSnapshot, "snapshot", "", "Write the final state as msgpack to this file")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the history database")
}

// tierStats summarises particle positions of one speed band.
type tierStats struct {
	Tier        weather.Tier
	Count       int
	MeanX, StdX float64
	MeanY, StdY float64
}

// simulationReport is the outcome of a headless run.
type simulationReport struct {
	Snapshot     scene.Snapshot
	Tiers        []tierStats
	StrikeTimes  []float64
	MeanInterval float64 // NaN with fewer than two strikes
}

// strikeFunc is notified of every lightning strike.
type strikeFunc func(simSeconds, boltAngle float64)

// simulate steps a fresh scene for the given number of frames.
func simulate(sceneID string, env registry.Env, cfg core.RuntimeConfig, frames int, onStrike strikeFunc) (simulationReport, error) {
	var report simulationReport

	sc, err := registry.Create(sceneID, env)
	if err != nil {
		return report, err
	}
	ws, ok := sc.(*scene.WeatherScene)
	if !ok {
		return report, fmt.Errorf("sky %q cannot be simulated headless", sceneID)
	}

	ws.Reset(cfg)
	in := core.NewInputFrame()
	for i := 0; i < frames; i++ {
		res := ws.Step(in)
		if res.Lightning {
			report.StrikeTimes = append(report.StrikeTimes, res.State.SimSeconds)
			if onStrike != nil {
				onStrike(res.State.SimSeconds, res.BoltAngle)
			}
		}
	}

	report.Snapshot = ws.Snapshot()
	report.Tiers = particleStats(ws.Instance())
	report.MeanInterval = meanInterval(report.StrikeTimes)
	return report, nil
}

func particleStats(w *weather.Instance) []tierStats {
	tiers := w.Tiers()
	if tiers.Total() == 0 {
		return nil
	}

	particles := w.Particles()
	out := make([]tierStats, 0, 3)
	for _, t := range []weather.Tier{weather.TierFast, weather.TierMedium, weather.TierSlow} {
		start, end := tiers.Range(t)
		xs := make([]float64, 0, end-start)
		ys := make([]float64, 0, end-start)
		for _, p := range particles[start:end] {
			xs = append(xs, p.XPercent)
			ys = append(ys, p.YPercent)
		}

		ts := tierStats{Tier: t, Count: end - start}
		if ts.Count > 0 {
			ts.MeanX, ts.StdX = stat.MeanStdDev(xs, nil)
			ts.MeanY, ts.StdY = stat.MeanStdDev(ys, nil)
		}
		out = append(out, ts)
	}
	return out
}

func meanInterval(times []float64) float64 {
	if len(times) < 2 {
		return math.NaN()
	}
	gaps := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps[i-1] = times[i] - times[i-1]
	}
	return stat.Mean(gaps, nil)
}

func runSimulate(_ *cobra.Command, args []string) {
	sceneID := args[0]
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown sky %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'arena-weather list' to see available skies.")
		os.Exit(1)
	}
	if flagFrames < 0 || flagWidth <= 0 || flagHeight <= 0 {
		exitf("frames must be non-negative and the viewport must be positive")
	}

	logger := newLogger()
	weatherCfg, env, err := loadWeather()
	if err != nil {
		exitf("%v", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:    flagWidth,
		ScreenH:    flagHeight,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		CellAspect: weatherCfg.Display.CellAspect,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var recorder *storage.Recorder
	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
		} else {
			defer store.Close()
		}
		recorder = storage.NewRecorder(store, logger)
		recorder.Start(sceneID, cfg.Seed)
	}

	var onStrike strikeFunc
	if recorder != nil {
		onStrike = recorder.Lightning
	}

	start := time.Now()
	report, err := simulate(sceneID, env, cfg, flagFrames, onStrike)
	if err != nil {
		exitf("%v", err)
	}
	logger.Debug("simulation finished", "sky", sceneID, "frames", flagFrames, "elapsed", time.Since(start))

	if recorder != nil {
		snap := report.Snapshot
		recorder.Finish(snap.Frames, snap.SimSeconds, snap.Strikes)
	}

	if flagSnapshot != "" {
		if err := writeSnapshot(flagSnapshot, report.Snapshot); err != nil {
			exitf("%v", err)
		}
	}

	printReport(os.Stdout, report)
}

func writeSnapshot(path string, snap scene.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := scene.EncodeSnapshot(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printReport(w io.Writer, report simulationReport) {
	snap := report.Snapshot
	fmt.Fprintf(w, "Sky:          %s (%s)\n", snap.Scene, snap.Weather)
	fmt.Fprintf(w, "Seed:         %d\n", snap.Seed)
	fmt.Fprintf(w, "Frames:       %d (%.2fs simulated)\n", snap.Frames, snap.SimSeconds)
	fmt.Fprintf(w, "Aspect ratio: %.3f\n", snap.AspectRatio)
	fmt.Fprintf(w, "Fingerprint:  %016x\n", snap.Fingerprint())

	if len(report.Tiers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %-7s %6s %8s %8s %8s %8s\n", "Tier", "Count", "Mean X", "Std X", "Mean Y", "Std Y")
		for _, ts := range report.Tiers {
			fmt.Fprintf(w, "  %-7s %6d %8.3f %8.3f %8.3f %8.3f\n",
				ts.Tier, ts.Count, ts.MeanX, ts.StdX, ts.MeanY, ts.StdY)
		}
	}

	if snap.Lightning != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Lightning:    %d strikes", snap.Strikes)
		if len(report.StrikeTimes) >= 2 {
			fmt.Fprintf(w, ", every %.2fs on average", report.MeanInterval)
		}
		fmt.Fprintln(w)
	}
}
