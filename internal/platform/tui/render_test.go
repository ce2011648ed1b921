package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arena-weather/internal/core"
)

func TestTerminalColor(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Color
		expected lipgloss.Color
		ok       bool
	}{
		{"default has no colour", core.ColorDefault, "", false},
		{"named", core.ColorBrightBlue, "12", true},
		{"gray", core.ColorGray, "245", true},
		{"indexed", core.IndexedColor(237), "237", true},
		{"indexed zero", core.IndexedColor(0), "0", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := terminalColor(tc.in)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("terminalColor(%d) = %q, %v; expected %q, %v", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestStyleCache(t *testing.T) {
	styles := make(styleCache)
	st := styles.style(cellColors{fg: core.ColorBrightWhite, bg: core.IndexedColor(235)})

	if st.GetForeground() != lipgloss.Color("15") {
		t.Errorf("foreground = %v", st.GetForeground())
	}
	if st.GetBackground() != lipgloss.Color("235") {
		t.Errorf("background = %v", st.GetBackground())
	}

	styles.style(cellColors{fg: core.ColorBrightWhite, bg: core.IndexedColor(235)})
	if len(styles) != 1 {
		t.Errorf("styles should be cached, got %d entries", len(styles))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "rain", core.ColorBlue)
	s.FillBackground(core.IndexedColor(237))

	out := RenderScreen(s)
	if len(out) < len(s.String()) {
		t.Errorf("rendered output lost content: %q", out)
	}
}
