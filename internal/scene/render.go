package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arena-weather/internal/core"
	"github.com/vovakirdan/arena-weather/internal/weather"
)

// Sky backgrounds as 256-colour palette indices.
const (
	skyOvercast = 239
	skyRain     = 237
	skyStorm    = 235
)

// hudHeight is the number of rows reserved at the top for the HUD.
const hudHeight = 1

type glyph struct {
	r  rune
	fg core.Color
}

var rainGlyphs = [...]glyph{
	weather.TierFast:   {'/', core.ColorBrightBlue},
	weather.TierMedium: {'/', core.ColorBlue},
	weather.TierSlow:   {'\'', core.ColorCyan},
}

var snowGlyphs = [...]glyph{
	weather.TierFast:   {'*', core.ColorBrightWhite},
	weather.TierMedium: {'+', core.ColorWhite},
	weather.TierSlow:   {'.', core.ColorGray},
}

// Render draws the sky, the particles, the lightning bolt and the HUD.
func (s *WeatherScene) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || s.instance == nil {
		return
	}

	if bg, ok := s.skyColor(); ok {
		dst.FillBackground(bg)
	}

	switch s.instance.Kind() {
	case weather.KindRain:
		rain := s.instance.Rain()
		s.renderField(dst, rain.Tier, rainGlyphs[:])
		if ts := rain.Thunderstorm(); ts != nil && ts.IsLightningBoltVisible() {
			renderBolt(dst, ts.LightningBoltAngle())
		}
	case weather.KindSnow:
		snow := s.instance.Snow()
		s.renderField(dst, snow.Tier, snowGlyphs[:])
	}

	s.renderHUD(dst)
}

// skyColor returns the background of the current weather. Clear skies keep
// the terminal background.
func (s *WeatherScene) skyColor() (core.Color, bool) {
	def := s.Definition()
	switch def.Kind {
	case weather.DefinitionOvercast:
		return core.IndexedColor(skyOvercast), true
	case weather.DefinitionSnow:
		return core.IndexedColor(skyOvercast), true
	case weather.DefinitionRain:
		ts := s.instance.Thunderstorm()
		if ts == nil {
			return core.IndexedColor(skyRain), true
		}
		if flash := ts.FlashPercent(); flash > 0 && ts.FlashColorCount() > 0 {
			return core.IndexedColor(flashColor(ts, flash)), true
		}
		return core.IndexedColor(skyStorm), true
	default:
		return core.ColorDefault, false
	}
}

// flashColor picks the palette entry for a flash brightness in (0, 1].
// The palette is ordered brightest first.
func flashColor(ts *weather.Thunderstorm, flash float64) uint8 {
	count := ts.FlashColorCount()
	idx := core.Clamp(int((1.0-flash)*float64(count)), 0, count-1)
	return ts.FlashColor(idx)
}

func (s *WeatherScene) renderField(dst *core.Screen, tier func(weather.Tier) []weather.Particle, glyphs []glyph) {
	w, h := dst.Width(), dst.Height()
	// Slow particles first so faster, nearer ones draw on top.
	for t := weather.TierSlow; t >= weather.TierFast; t-- {
		g := glyphs[t]
		for _, p := range tier(t) {
			x, okX := core.PercentToCell(p.XPercent, w)
			y, okY := core.PercentToCell(p.YPercent, h)
			if !okX || !okY || y < hudHeight {
				continue
			}
			dst.SetColored(x, y, g.r, g.fg)
		}
	}
}

// renderBolt draws a jagged bolt whose column follows the bolt angle.
// The zigzag is derived from the angle so rendering stays free of RNG draws.
func renderBolt(dst *core.Screen, angle float64) {
	w, h := dst.Width(), dst.Height()
	x := int(angle / (2 * math.Pi) * float64(w))
	bottom := hudHeight + (h-hudHeight)*2/3

	for y := hudHeight; y < bottom; y++ {
		step := int(math.Round(math.Sin(angle*7+float64(y)*1.3) * 1.2))
		r := '|'
		switch {
		case step < 0:
			r = '/'
		case step > 0:
			r = '\\'
		}
		x = core.Clamp(x+step, 0, w-1)
		dst.SetColored(x, y, r, core.ColorBrightYellow)
	}
}

func (s *WeatherScene) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  frame %d  %.1fs", s.Title(), s.frames, s.simSeconds)
	if ts := s.instance.Thunderstorm(); ts != nil {
		state := "on"
		if !ts.Active() {
			state = "off"
		}
		hud += fmt.Sprintf("  strikes %d  lightning %s", s.strikes, state)
	}
	if n := len(s.instance.Particles()); n > 0 {
		hud += fmt.Sprintf("  particles %d", n)
	}
	if s.paused {
		hud += "  [PAUSED]"
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}
