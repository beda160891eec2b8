package core

// Color is the foreground colour of a screen cell.
// Values map to ANSI 256-colour codes in the platform renderer.
type Color uint8

// Palette used by the lawn renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorGold
	ColorTileA // light lawn tile
	ColorTileB // dark lawn tile
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightWhite:
		return "bright-white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorBrown:
		return "brown"
	case ColorGold:
		return "gold"
	case ColorTileA:
		return "tile-a"
	case ColorTileB:
		return "tile-b"
	default:
		return "unknown"
	}
}
