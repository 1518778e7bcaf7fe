package core

import "strings"

// Color is a foreground color for a screen cell.
type Color uint8

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

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"purple":        ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"brightred":     ColorBrightRed,
	"brightgreen":   ColorBrightGreen,
	"brightyellow":  ColorBrightYellow,
	"gold":          ColorBrightYellow,
	"brightblue":    ColorBrightBlue,
	"brightmagenta": ColorBrightMagenta,
	"brightcyan":    ColorBrightCyan,
	"brightwhite":   ColorBrightWhite,
	"orange":        ColorOrange,
	"gray":          ColorGray,
	"grey":          ColorGray,
}

// ParseColor maps a color name from a config file to a Color. Case, spaces,
// dashes and underscores are ignored. Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	key := strings.ToLower(name)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	return colorNames[key]
}
