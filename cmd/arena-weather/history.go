package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/storage"
)

var (
	flagLimit     int
	flagClear     bool
	flagLightning string
)

var historyCmd = &cobra.Command{
	Use:   "history [sky]",
	Short: "Show recorded sessions",
	Long: `Display recently recorded sessions and per-sky totals.

Examples:
  arena-weather history
  arena-weather history thunderstorm --limit 20
  arena-weather history --lightning <session-id>
  arena-weather history snow --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded history (of one sky if given)")
	historyCmd.Flags().StringVar(&flagLightning, "lightning", "", "List the lightning strikes of a session")
}

func runHistory(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown sky %q\n", sceneID)
			fmt.Fprintln(os.Stderr, "Run 'arena-weather list' to see available skies.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening history database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearHistory(sceneID); err != nil {
			exitf("clearing history: %v", err)
		}
		if sceneID == "" {
			fmt.Println("History cleared.")
		} else {
			fmt.Printf("History of %s cleared.\n", sceneID)
		}
	case flagLightning != "":
		if err := printLightning(store, flagLightning); err != nil {
			exitf("%v", err)
		}
	default:
		if err := printSessions(store, sceneID, flagLimit); err != nil {
			exitf("%v", err)
		}
	}
}

func printSessions(store *storage.Store, sceneID string, limit int) error {
	sessions, err := store.RecentSessions(sceneID, limit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arena-weather watch <sky>' to record the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-20s  %8s  %9s  %7s  %s\n",
		"Started", "Sky", "Seed", "Frames", "Sim", "Strikes", "Session")
	fmt.Printf("  %-16s  %-12s  %-20s  %8s  %9s  %7s  %s\n",
		"-------", "---", "----", "------", "---", "-------", "-------")
	for _, s := range sessions {
		sim := "running"
		if s.Finished() {
			sim = fmt.Sprintf("%.1fs", s.SimSeconds)
		}
		fmt.Printf("  %-16s  %-12s  %-20d  %8d  %9s  %7d  %s\n",
			s.StartedAt.Local().Format("2006-01-02 15:04"), s.SceneID, s.Seed, s.Frames, sim, s.Strikes, s.ID)
	}

	totals, err := store.SceneTotals()
	if err != nil {
		return fmt.Errorf("retrieving totals: %w", err)
	}

	ids := make([]string, 0, len(totals))
	for id := range totals {
		if sceneID == "" || id == sceneID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println()
	fmt.Println("Totals")
	fmt.Println()
	for _, id := range ids {
		t := totals[id]
		fmt.Printf("  %-12s  %d sessions, %d frames, %.1fs simulated, %d strikes\n",
			id, t.Sessions, t.Frames, t.SimSeconds, t.Strikes)
	}
	return nil
}

func printLightning(store *storage.Store, sessionID string) error {
	session, err := store.Session(sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no session %q", sessionID)
	}
	if err != nil {
		return fmt.Errorf("retrieving session: %w", err)
	}

	strikes, err := store.Lightning(sessionID)
	if err != nil {
		return fmt.Errorf("retrieving lightning: %w", err)
	}

	fmt.Printf("Lightning - %s session %s\n", session.SceneID, session.ID)
	fmt.Println()

	if len(strikes) == 0 {
		fmt.Println("No strikes recorded.")
		return nil
	}

	fmt.Printf("  %-4s  %10s  %10s\n", "#", "Sim time", "Angle")
	fmt.Printf("  %-4s  %10s  %10s\n", "-", "--------", "-----")
	for i, strike := range strikes {
		fmt.Printf("  %-4d  %9.2fs  %10.3f\n", i+1, strike.SimSeconds, strike.BoltAngle)
	}
	return nil
}
