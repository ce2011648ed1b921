package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Reopening runs the migrations again
	store.Close()
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestStoreSessionLifecycle(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = fixedClock(start)

	id, err := store.StartSession("thunderstorm", 42)
	if err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("session ID %q is not a UUID: %v", id, err)
	}

	sess, err := store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if sess.SceneID != "thunderstorm" || sess.Seed != 42 {
		t.Errorf("Session() = %+v", sess)
	}
	if sess.Finished() {
		t.Error("new session should not be finished")
	}
	if !sess.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", sess.StartedAt, start)
	}

	if err := store.FinishSession(id, 900, 30.0, 4); err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	sess, err = store.Session(id)
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if sess.Frames != 900 || sess.SimSeconds != 30.0 || sess.Strikes != 4 {
		t.Errorf("finished session = %+v", sess)
	}
	if !sess.Finished() || !sess.EndedAt.Equal(start.Add(time.Minute)) {
		t.Errorf("EndedAt = %v", sess.EndedAt)
	}
}

func TestStoreNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Session("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session(missing) err = %v, expected ErrNotFound", err)
	}
	if err := store.FinishSession("missing", 1, 1, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("FinishSession(missing) err = %v, expected ErrNotFound", err)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)
	store.now = fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var ids []string
	for _, scene := range []string{"rain", "snow", "rain", "rain"} {
		id, err := store.StartSession(scene, 1)
		if err != nil {
			t.Fatalf("StartSession() failed: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("Expected 4 sessions, got %d", len(all))
	}
	// Newest first
	if all[0].ID != ids[3] || all[3].ID != ids[0] {
		t.Errorf("sessions not ordered newest first: %v", all)
	}

	rain, err := store.RecentSessions("rain", 2)
	if err != nil {
		t.Fatalf("RecentSessions(rain) failed: %v", err)
	}
	if len(rain) != 2 {
		t.Fatalf("Expected 2 rain sessions with limit, got %d", len(rain))
	}
	for _, s := range rain {
		if s.SceneID != "rain" {
			t.Errorf("filter leaked scene %q", s.SceneID)
		}
	}
}

func TestStoreLightning(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.StartSession("thunderstorm", 7)
	other, _ := store.StartSession("thunderstorm", 8)

	for _, at := range []float64{4.5, 1.25, 9.0} {
		if _, err := store.RecordLightning(id, at, at/10); err != nil {
			t.Fatalf("RecordLightning() failed: %v", err)
		}
	}
	store.RecordLightning(other, 2.0, 0.5)

	strikes, err := store.Lightning(id)
	if err != nil {
		t.Fatalf("Lightning() failed: %v", err)
	}
	if len(strikes) != 3 {
		t.Fatalf("Expected 3 strikes, got %d", len(strikes))
	}
	if strikes[0].SimSeconds != 1.25 || strikes[2].SimSeconds != 9.0 {
		t.Errorf("strikes not in simulated time order: %v", strikes)
	}
	if strikes[1].BoltAngle != 0.45 || strikes[1].SessionID != id {
		t.Errorf("strike = %+v", strikes[1])
	}
}

func TestStoreSceneTotals(t *testing.T) {
	store := openTestStore(t)

	a, _ := store.StartSession("rain", 1)
	b, _ := store.StartSession("rain", 2)
	c, _ := store.StartSession("snow", 3)
	store.FinishSession(a, 100, 4.0, 0)
	store.FinishSession(b, 50, 2.0, 0)
	store.FinishSession(c, 10, 0.5, 0)

	totals, err := store.SceneTotals()
	if err != nil {
		t.Fatalf("SceneTotals() failed: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(totals))
	}

	rain := totals["rain"]
	if rain == nil || rain.Sessions != 2 || rain.Frames != 150 || rain.SimSeconds != 6.0 {
		t.Errorf("rain totals = %+v", rain)
	}
	if rain.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearHistory(t *testing.T) {
	store := openTestStore(t)

	rain, _ := store.StartSession("rain", 1)
	storm, _ := store.StartSession("thunderstorm", 2)
	store.RecordLightning(storm, 1.0, 0.1)

	// Clear only thunderstorm history
	if err := store.ClearHistory("thunderstorm"); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	if _, err := store.Session(storm); !errors.Is(err, ErrNotFound) {
		t.Error("thunderstorm session should be gone")
	}
	if strikes, _ := store.Lightning(storm); len(strikes) != 0 {
		t.Error("strikes of cleared sessions should be gone")
	}
	if _, err := store.Session(rain); err != nil {
		t.Error("rain history should not be affected")
	}

	// Clear everything
	if err := store.ClearHistory(""); err != nil {
		t.Fatalf("ClearHistory(\"\") failed: %v", err)
	}
	if all, _ := store.RecentSessions("", 10); len(all) != 0 {
		t.Errorf("Expected empty history, got %d sessions", len(all))
	}
}
