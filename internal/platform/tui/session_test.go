package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-weather/internal/registry"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), registry.DefaultEnv(), log.New(io.Discard))
	if m.screen != screenMenu || m.View() == "" {
		t.Fatal("session should open on the menu")
	}

	// Enter starts the first scene
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScene {
		t.Fatalf("screen = %d, expected scene", m.screen)
	}
	m = sessionSend(t, m, TickMsg{})
	if m.scene.State().Frames != 1 {
		t.Errorf("scene should tick inside the session, Frames = %d", m.scene.State().Frames)
	}

	// Esc goes back to the menu
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, expected menu", m.screen)
	}

	// Tab opens the history, Esc closes it
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenHistory {
		t.Fatalf("screen = %d, expected history", m.screen)
	}
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, expected menu", m.screen)
	}

	// Resizes are tracked across screens
	m = sessionSend(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config = %+v", m.config)
	}

	m = sessionSend(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestMenuListsScenesInCycleOrder(t *testing.T) {
	m := NewMenuModel(testRuntime())
	ids := registry.Ordered()
	if len(m.items) != len(ids) {
		t.Fatalf("menu has %d items, expected %d", len(m.items), len(ids))
	}
	for i, item := range m.items {
		if item.SceneID != ids[i] || item.Title == "" {
			t.Errorf("item %d = %+v", i, item)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().SceneID != ids[1] {
		t.Errorf("Selected() = %+v, expected %s", m.Selected(), ids[1])
	}
}
