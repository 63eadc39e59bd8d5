package token

import "strings"

// Color is one entry of the fixed palette available for naming values.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorTeal
	ColorBlue
	ColorPurple
	ColorPink
)

var colorNames = map[Color]string{
	ColorNone:   "",
	ColorRed:    "red",
	ColorOrange: "orange",
	ColorYellow: "yellow",
	ColorGreen:  "green",
	ColorTeal:   "teal",
	ColorBlue:   "blue",
	ColorPurple: "purple",
	ColorPink:   "pink",
}

// String returns the lowercase palette name, empty for ColorNone.
func (c Color) String() string {
	return colorNames[c]
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// Palette returns the selectable colors in display order.
func Palette() []Color {
	return []Color{
		ColorRed, ColorOrange, ColorYellow, ColorGreen,
		ColorTeal, ColorBlue, ColorPurple, ColorPink,
	}
}

// ParseColor returns the color for a palette name. Unknown names map to
// ColorNone.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorNone, true
	}
	for c, name := range colorNames {
		if name == s {
			return c, true
		}
	}
	return ColorNone, false
}
