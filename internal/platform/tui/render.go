package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arena-weather/internal/core"
)

// namedColors maps the named core colours to terminal palette entries.
var namedColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// terminalColor returns the lipgloss colour of c, false for the default colour.
func terminalColor(c core.Color) (lipgloss.Color, bool) {
	if idx, ok := c.Indexed(); ok {
		return lipgloss.Color(strconv.Itoa(int(idx))), true
	}
	lc, ok := namedColors[c]
	return lc, ok
}

type cellColors struct {
	fg, bg core.Color
}

// styleCache memoizes one lipgloss style per fg/bg pair.
type styleCache map[cellColors]lipgloss.Style

func (sc styleCache) style(colors cellColors) lipgloss.Style {
	if st, ok := sc[colors]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg, ok := terminalColor(colors.fg); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := terminalColor(colors.bg); ok {
		st = st.Background(bg)
	}
	sc[colors] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(styleCache)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
