package core

import "image/color"
import "strconv"
import "strings"

// A Palette maps dot states to colors. Index 0 is the color of
// [Off] dots, index 1 the color of [On] dots, and so on.
type Palette []color.RGBA

// Default amber-on-black palette, with a few extra states for
// multi-color content.
var DefaultPalette = Palette{
	{ 40,  26,  12, 255}, // off
	{255, 176,  32, 255}, // on (amber)
	{235,  48,  40, 255}, // red
	{ 64, 220,  88, 255}, // green
	{ 72, 136, 255, 255}, // blue
	{240, 240, 240, 255}, // white
}

// Returns the color for the given state. States below zero use the
// [Off] color and states beyond the palette use the last color.
// Empty palettes return opaque black for [Off] and white otherwise.
func (self Palette) Color(state int) color.RGBA {
	if len(self) == 0 {
		if state <= Off { return color.RGBA{0, 0, 0, 255} }
		return color.RGBA{255, 255, 255, 255}
	}
	if state < 0 { return self[0] }
	if state >= len(self) { return self[len(self) - 1] }
	return self[state]
}

// Parses a palette from hex color strings like "#ffb020" or "ffb020ff".
func ParsePalette(hexColors []string) (Palette, error) {
	palette := make(Palette, 0, len(hexColors))
	for _, hex := range hexColors {
		rgba, err := ParseHexColor(hex)
		if err != nil { return nil, err }
		palette = append(palette, rgba)
	}
	return palette, nil
}

// Parses "#RRGGBB" or "#RRGGBBAA" colors. The '#' is optional.
func ParseHexColor(hex string) (color.RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return color.RGBA{}, errMsg("invalid hex color '" + hex + "'")
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, errMsg("invalid hex color '" + hex + "'")
	}
	if len(digits) == 6 { value = (value << 8) | 0xFF }
	return color.RGBA{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >>  8),
		A: uint8(value),
	}, nil
}

// Returns the color as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func HexColor(rgba color.RGBA) string {
	const digits = "0123456789ABCDEF"
	bytes := []byte{'#'}
	channels := []uint8{rgba.R, rgba.G, rgba.B}
	if rgba.A != 255 { channels = append(channels, rgba.A) }
	for _, channel := range channels {
		bytes = append(bytes, digits[channel >> 4], digits[channel & 0x0F])
	}
	return string(bytes)
}

type errMsg string
func (self errMsg) Error() string { return string(self) }
