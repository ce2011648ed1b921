package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arena-weather/internal/core"
)

// SceneKeyMap defines the key bindings while a scene is running.
type SceneKeyMap struct {
	Pause           key.Binding
	NextWeather     key.Binding
	ToggleLightning key.Binding
	Restart         key.Binding
	Screenshot      key.Binding
	Back            key.Binding
	Quit            key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SceneKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.NextWeather, k.ToggleLightning, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SceneKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.NextWeather, k.ToggleLightning, k.Restart},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultSceneKeyMap returns default key bindings.
func DefaultSceneKeyMap() SceneKeyMap {
	return SceneKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		NextWeather: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next weather"),
		),
		ToggleLightning: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lightning"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a scene action.
// Returns ActionNone for unbound keys.
func (k SceneKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.NextWeather):
		return core.ActionNextWeather
	case key.Matches(msg, k.ToggleLightning):
		return core.ActionToggleLightning
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings of the scene picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "watch"),
		),
		History: key.NewBinding(
			key.WithKeys("tab", "h"),
			key.WithHelp("tab/h", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
