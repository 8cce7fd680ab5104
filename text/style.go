// Package text converts strings into dot contents using dot-matrix fonts.
package text

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"

const preViolation = "precondition violation"

// Style groups all the parameters that affect text rasterization.
type Style struct {
	// Font used for all characters. Must not be nil.
	Font font.Font

	// With fixed width, every character takes the font's cell width
	// and narrower glyphs are centered within it.
	Fixed bool

	// Bold text is synthesized by thickening glyphs one dot to the
	// right. Bold characters are one dot wider.
	Bold bool

	// Dot states for the glyph dots and the background.
	TextState int
	BackState int

	// Dots between consecutive characters and between lines.
	CharSpacing int
	LineSpacing int

	// Horizontal alignment of lines within a multi-line block. Only
	// the horizontal component is considered; zero means [core.Left].
	Align core.Align
}

// Returns the default style for the given font: fixed width, no bold,
// [core.On] text over [core.Off] background, one dot of char and line
// spacing, left aligned.
func DefaultStyle(fnt font.Font) Style {
	return Style{
		Font: fnt,
		Fixed: true,
		TextState: core.On,
		BackState: core.Off,
		CharSpacing: 1,
		LineSpacing: 1,
		Align: core.Left,
	}
}
