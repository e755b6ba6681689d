package core

import "fmt"

// Color is a 24-bit RGB foreground color (0xRRGGBB) for a screen cell.
// ColorDefault sits outside the RGB range and means "terminal default".
type Color uint32

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = 1 << 24

// Predefined colors for game elements.
const (
	ColorWhite  Color = 0xffffff
	ColorGray   Color = 0x888888
	ColorGold   Color = 0xffd700
	ColorRed    Color = 0xff4444
	ColorGreen  Color = 0x00ff88
	ColorAmber  Color = 0xffcc00
	ColorSilver Color = 0xaaaaaa
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c > 0xffffff
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c))
}
