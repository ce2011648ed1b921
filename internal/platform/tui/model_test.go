package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"
	_ "github.com/vovakirdan/arena-weather/internal/scene"
	"github.com/vovakirdan/arena-weather/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 7, CellAspect: 2.0}
}

func newTestModel(t *testing.T, id string, store *storage.Store) SceneModel {
	t.Helper()
	s, err := registry.Create(id, registry.DefaultEnv())
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	return NewSceneModel(s, store, testRuntime(), log.New(io.Discard))
}

func send(t *testing.T, m SceneModel, msg tea.Msg) SceneModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SceneModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSceneModelTicks(t *testing.T) {
	m := newTestModel(t, "rain", nil)
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}
	if m.State().Frames != 5 {
		t.Errorf("Frames = %d, expected 5", m.State().Frames)
	}

	// Keys apply on the next tick
	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if !m.State().Paused {
		t.Error("p should pause on the next tick")
	}
	m = send(t, m, TickMsg{})
	if m.State().Frames != 5 {
		t.Errorf("paused Frames = %d, expected 5", m.State().Frames)
	}
}

func TestSceneModelNextWeather(t *testing.T) {
	m := newTestModel(t, "rain", nil)
	m = send(t, m, runeKey('n'))
	m = send(t, m, TickMsg{})
	if m.State().Weather != "thunderstorm" {
		t.Errorf("Weather = %q, expected thunderstorm", m.State().Weather)
	}
}

func TestSceneModelView(t *testing.T) {
	m := newTestModel(t, "snow", nil)
	if m.View() == "" {
		t.Fatal("View should render the sky")
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.screen.Width() != 30 || m.screen.Height() != 10-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View should render after resize")
	}
}

func TestSceneModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, "clear", nil)
	back := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}
	if back.View() != "" {
		t.Error("no view after leaving the scene")
	}

	quit := send(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestSceneModelRecordsHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, "thunderstorm", store)
	// Long enough for at least one strike
	for i := 0; i < 30*10; i++ {
		m = send(t, m, TickMsg{})
	}
	strikes := m.State().Strikes
	send(t, m, runeKey('q'))

	sessions, err := store.RecentSessions("thunderstorm", 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	sess := sessions[0]
	if !sess.Finished() || sess.Frames != 300 || sess.Strikes != strikes || sess.Seed != 7 {
		t.Errorf("session = %+v", sess)
	}
	if strikes == 0 {
		t.Fatal("expected lightning within 10 seconds")
	}

	recorded, err := store.Lightning(sess.ID)
	if err != nil {
		t.Fatalf("Lightning: %v", err)
	}
	if len(recorded) != strikes {
		t.Errorf("recorded %d strikes, expected %d", len(recorded), strikes)
	}
}
