package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/storage"
)

// helpHeight is the number of rows below the sky reserved for the help bar.
const helpHeight = 1

// SceneModel is the Bubble Tea model for watching one weather scene.
type SceneModel struct {
	scene      registry.Scene
	screen     *core.Screen
	recorder   *storage.Recorder
	config     core.RuntimeConfig
	keys       SceneKeyMap
	help       help.Model
	inputFrame core.InputFrame
	state      core.SceneState
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone runs have no menu to go back to
}

// NewSceneModel creates a model for the given scene and opens its history
// session. The scene is reset here so the first tick already has a sky.
func NewSceneModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SceneModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	skyCfg := cfg
	skyCfg.ScreenH = max(0, cfg.ScreenH-helpHeight)
	scene.Reset(skyCfg)

	rec := storage.NewRecorder(store, logger)
	rec.Start(scene.ID(), cfg.Seed)

	h := help.New()
	h.Width = cfg.ScreenW

	return SceneModel{
		scene:      scene,
		screen:     core.NewScreen(skyCfg.ScreenW, skyCfg.ScreenH),
		recorder:   rec,
		config:     cfg,
		keys:       DefaultSceneKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		state:      scene.State(),
	}
}

// Init starts the tick loop.
func (m SceneModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m SceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SceneModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finish()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the weather running with the new viewport shape.
func (m SceneModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	skyH := max(0, msg.Height-helpHeight)
	m.screen.Resize(msg.Width, skyH)
	m.scene.Resize(msg.Width, skyH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m SceneModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// Reseeding starts a new history session
	if m.inputFrame.Has(core.ActionRestart) {
		m.finish()
		m.config.Seed = time.Now().UnixNano()
		skyCfg := m.config
		skyCfg.ScreenH = m.screen.Height()
		m.scene.Reset(skyCfg)
		m.recorder.Start(m.scene.ID(), m.config.Seed)
		m.state = m.scene.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.scene.Step(m.inputFrame)
	m.state = result.State
	if result.Lightning {
		m.recorder.Lightning(m.state.SimSeconds, result.BoltAngle)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// finish closes the history session.
func (m SceneModel) finish() {
	m.recorder.Finish(m.state.Frames, m.state.SimSeconds, m.state.Strikes)
}

// saveScreenshot saves the current sky to a text file.
func (m SceneModel) saveScreenshot() {
	m.scene.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arena-weather", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))

	//nolint:errcheck // Best-effort save, scene continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m SceneModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.scene.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last scene state.
func (m SceneModel) State() core.SceneState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m SceneModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m SceneModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single scene.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (core.SceneState, error) {
	model := NewSceneModel(scene, store, cfg, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(SceneModel); ok {
		// Interrupted programs skip the quit key; close the session anyway.
		m.finish()
		return m.State(), err
	}
	return model.State(), err
}
