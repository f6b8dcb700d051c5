package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors when drawing.
type Color uint8

// Predefined colors for game elements. The first seven non-default entries
// match the guideline piece palette: cyan I, yellow O, magenta T, green S,
// red Z, blue J, orange L.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorWhite
	ColorGray
	ColorBrightWhite
)
