package scene

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/registry"
	"github.com/vovakirdan/arena-weather/internal/weather"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   30,
		Seed:       12345,
		CellAspect: 2.0,
	}
}

func newScene(t *testing.T, id string) *WeatherScene {
	t.Helper()
	s, err := registry.Create(id, registry.DefaultEnv())
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	ws, ok := s.(*WeatherScene)
	if !ok {
		t.Fatalf("Create(%q) returned %T", id, s)
	}
	ws.Reset(testConfig())
	return ws
}

func step(s *WeatherScene, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return s.Step(in)
}

func TestPresetsRegistered(t *testing.T) {
	for _, id := range []string{"clear", "overcast", "rain", "thunderstorm", "snow"} {
		if !registry.Exists(id) {
			t.Errorf("scene %q is not registered", id)
		}
	}

	s := newScene(t, "thunderstorm")
	if s.Title() != "Thunderstorm" {
		t.Errorf("Title() = %q", s.Title())
	}
	if s.Instance().Thunderstorm() == nil {
		t.Error("thunderstorm scene should have lightning")
	}
}

func TestDeterminism(t *testing.T) {
	for _, id := range []string{"rain", "thunderstorm", "snow"} {
		t.Run(id, func(t *testing.T) {
			s1 := newScene(t, id)
			s2 := newScene(t, id)

			for i := 0; i < 600; i++ {
				s1.Step(core.NewInputFrame())
				s2.Step(core.NewInputFrame())
			}

			snap1, snap2 := s1.Snapshot(), s2.Snapshot()
			if snap1.Fingerprint() != snap2.Fingerprint() {
				t.Error("same seed should produce identical fields")
			}
			if snap1.Strikes != snap2.Strikes || snap1.Frames != 600 {
				t.Errorf("snapshots diverged: %+v vs %+v", snap1.Strikes, snap2.Strikes)
			}
		})
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	s1 := newScene(t, "rain")
	s2 := newScene(t, "rain")
	cfg := testConfig()
	cfg.Seed = 999
	s2.Reset(cfg)

	if s1.Snapshot().Fingerprint() == s2.Snapshot().Fingerprint() {
		t.Error("different seeds should produce different fields")
	}
}

func TestPause(t *testing.T) {
	s := newScene(t, "snow")
	step(s)
	before := s.Snapshot()

	res := step(s, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("ActionPause should pause")
	}
	for i := 0; i < 10; i++ {
		step(s)
	}
	after := s.Snapshot()
	if before.Fingerprint() != after.Fingerprint() || after.Frames != before.Frames {
		t.Error("paused scene should not advance")
	}

	if res := step(s, core.ActionPause); res.State.Paused || res.State.Frames != before.Frames+1 {
		t.Errorf("second ActionPause should resume, got %+v", res.State)
	}
}

func TestNextWeatherCycles(t *testing.T) {
	s := newScene(t, "clear")

	expected := []string{"overcast", "rain", "thunderstorm", "snow", "clear"}
	for _, name := range expected {
		res := step(s, core.ActionNextWeather)
		if !res.WeatherChanged {
			t.Errorf("ActionNextWeather should report a change to %s", name)
		}
		if res.State.Weather != name {
			t.Errorf("Weather = %q, expected %q", res.State.Weather, name)
		}
	}

	if res := step(s); res.WeatherChanged {
		t.Error("plain step should not change the weather")
	}
}

func TestToggleLightning(t *testing.T) {
	s := newScene(t, "thunderstorm")
	ts := s.Instance().Thunderstorm()
	if !ts.Active() {
		t.Fatal("thunderstorm scenes start with lightning on")
	}

	step(s, core.ActionToggleLightning)
	if ts.Active() {
		t.Fatal("ActionToggleLightning should stop the lightning")
	}

	// With lightning off no strike can happen, however long we wait.
	for i := 0; i < 30*20; i++ {
		if res := step(s); res.Lightning {
			t.Fatal("inactive thunderstorm struck")
		}
	}

	// Toggling on non-storm weather is a no-op.
	rain := newScene(t, "rain")
	step(rain, core.ActionToggleLightning)
}

func TestLightningStrikesReported(t *testing.T) {
	s := newScene(t, "thunderstorm")

	// The strike interval is at most sky flash plus jitter seconds.
	strikes := 0
	for i := 0; i < 30*20; i++ {
		res := step(s)
		if res.Lightning {
			strikes++
			if res.BoltAngle < 0 || res.BoltAngle >= 2*math.Pi {
				t.Errorf("BoltAngle = %v out of [0, 2pi)", res.BoltAngle)
			}
		}
	}
	if strikes == 0 {
		t.Fatal("expected lightning within 20 seconds")
	}
	if s.State().Strikes != strikes {
		t.Errorf("State().Strikes = %d, expected %d", s.State().Strikes, strikes)
	}
}

func TestResizeKeepsWeather(t *testing.T) {
	s := newScene(t, "rain")
	before := s.Snapshot()

	s.Resize(120, 40)
	after := s.Snapshot()
	if before.Fingerprint() != after.Fingerprint() {
		t.Error("Resize should not rebuild the weather")
	}
	if after.AspectRatio != 1.5 {
		t.Errorf("AspectRatio = %v, expected 1.5", after.AspectRatio)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		id     string
		glyphs string
	}{
		{"rain", "/'"},
		{"snow", "*+."},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			s := newScene(t, tc.id)
			screen := core.NewScreen(80, 24)
			s.Render(screen)

			if !strings.HasPrefix(screen.Row(0), " "+s.Title()) {
				t.Errorf("HUD row = %q", screen.Row(0))
			}

			found := 0
			for y := 1; y < screen.Height(); y++ {
				for _, r := range screen.Row(y) {
					if strings.ContainsRune(tc.glyphs, r) {
						found++
					}
				}
			}
			if found == 0 {
				t.Error("no particles rendered")
			}
			if _, ok := screen.GetCell(0, 5).Bg.Indexed(); !ok {
				t.Error("precipitation should tint the sky")
			}
		})
	}
}

func TestRenderClearSky(t *testing.T) {
	s := newScene(t, "clear")
	screen := core.NewScreen(40, 10)
	s.Render(screen)

	for y := 1; y < screen.Height(); y++ {
		if row := screen.Row(y); strings.TrimSpace(row) != "" {
			t.Errorf("clear sky row %d = %q", y, row)
		}
	}
	if screen.GetCell(0, 5).Bg != core.ColorDefault {
		t.Error("clear sky should keep the terminal background")
	}
}

func TestRenderFlash(t *testing.T) {
	s := newScene(t, "thunderstorm")
	screen := core.NewScreen(80, 24)

	for i := 0; i < 30*20; i++ {
		if res := step(s); res.Lightning {
			break
		}
	}
	ts := s.Instance().Thunderstorm()
	if ts.SecondsSincePrevLightning() != 0 {
		t.Fatal("expected a strike within 20 seconds")
	}

	s.Render(screen)
	idx, ok := screen.GetCell(0, 5).Bg.Indexed()
	if !ok || idx != ts.FlashColor(0) {
		t.Errorf("sky right after a strike should use the brightest flash colour, got %d", idx)
	}

	bolt := 0
	for y := 1; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Fg == core.ColorBrightYellow {
				bolt++
			}
		}
	}
	if bolt == 0 {
		t.Error("bolt should be visible right after a strike")
	}
}

func TestRenderDoesNotAdvance(t *testing.T) {
	s := newScene(t, "snow")
	before := s.Snapshot().Fingerprint()
	s.Render(core.NewScreen(80, 24))
	s.Render(core.NewScreen(0, 0))
	if s.Snapshot().Fingerprint() != before {
		t.Error("Render must not change the simulation")
	}
}

func TestSnapshotEncoding(t *testing.T) {
	s := newScene(t, "thunderstorm")
	for i := 0; i < 10; i++ {
		step(s)
	}
	snap := s.Snapshot()

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	decoded, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if decoded.Fingerprint() != snap.Fingerprint() || decoded.Weather != "thunderstorm" {
		t.Error("decoded snapshot should match the original")
	}
	if decoded.Lightning == nil {
		t.Fatal("thunderstorm snapshot should carry lightning state")
	}

	want := registry.DefaultEnv().Params.RainTiers.Total()
	if len(decoded.Particles) != want || decoded.Particles[0].Tier != weather.TierFast.String() {
		t.Errorf("decoded %d particles, expected %d", len(decoded.Particles), want)
	}
}
