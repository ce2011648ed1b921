package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-weather/internal/storage"
)

func TestHistoryModelFilters(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	rain, _ := store.StartSession("rain", 1)
	store.FinishSession(rain, 30, 1.0, 0)
	store.StartSession("snow", 2)

	m := NewHistoryModel(store, 120, 30)
	if len(m.sessions) != 2 {
		t.Fatalf("all-skies filter shows %d sessions, expected 2", len(m.sessions))
	}
	if !strings.Contains(m.View(), allScenes) {
		t.Error("title should name the active filter")
	}

	// Step the filter until it lands on rain.
	for i := 0; i < len(m.filters) && m.filters[m.cursor].ID != "rain"; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(HistoryModel)
	}
	if m.filters[m.cursor].ID != "rain" {
		t.Fatal("rain filter not found")
	}
	if len(m.sessions) != 1 || m.sessions[0].ID != rain {
		t.Errorf("rain filter shows %+v", m.sessions)
	}

	// Wrapping backwards from the first entry lands on the last one.
	m.cursor = 0
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.cursor != len(m.filters)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.filters)-1)
	}
}

func TestHistoryRow(t *testing.T) {
	row := historyRow(storage.Session{SceneID: "snow", Seed: 5, SimSeconds: 2.5})
	if row[1] != "snow" || row[2] != "5" || row[3] != "running" || row[4] != "2.5s" {
		t.Errorf("row = %v", row)
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 60, 20)
	if !strings.Contains(m.View(), "disabled") {
		t.Error("missing store should be explained")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(HistoryModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
