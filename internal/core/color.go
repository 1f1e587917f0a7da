package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// heatRamp runs from calm to alarming.
var heatRamp = []Color{
	ColorBrightGreen,
	ColorGreen,
	ColorYellow,
	ColorOrange,
	ColorRed,
	ColorBrightRed,
}

// HeatColor maps a ratio in [0, 1] onto a green-to-red ramp.
// Out-of-range ratios are clamped.
func HeatColor(ratio float64) Color {
	ratio = ClampF(ratio, 0, 1)
	i := int(ratio * float64(len(heatRamp)))
	if i >= len(heatRamp) {
		i = len(heatRamp) - 1
	}
	return heatRamp[i]
}
