package core

// Color is a foreground or background colour of a screen cell.
// Values below ColorIndexedBase are named terminal colours; values from
// ColorIndexedBase up address the 256-colour palette directly.
type Color uint16

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ColorIndexedBase is the first palette-indexed colour.
const ColorIndexedBase Color = 256

// IndexedColor returns the colour for an 8-bit palette index.
func IndexedColor(index uint8) Color {
	return ColorIndexedBase + Color(index)
}

// Indexed reports whether c addresses the 256-colour palette, and its index.
func (c Color) Indexed() (uint8, bool) {
	if c < ColorIndexedBase {
		return 0, false
	}
	return uint8(c - ColorIndexedBase), true
}
