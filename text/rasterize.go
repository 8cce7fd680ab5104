package text

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/font"

// Rasterizes a single line of text with [core.On] dots over a
// [core.Off] background and left alignment. Line breaks in the
// text still split it into multiple lines.
func RasterizeLine(line string, fnt font.Font, fixed, bold bool, charSpacing int) *core.Content {
	style := DefaultStyle(fnt)
	style.Fixed = fixed
	style.Bold = bold
	style.CharSpacing = charSpacing
	return Rasterize(SplitLines(line), style)
}

// Rasterizes the given lines of text into a new content.
//
// The width of each line is the sum of its character widths plus
// the char spacing between them, and the content takes the width of
// the widest line. The height is the font height times the number of
// lines, plus the line spacing between them. Characters unknown to
// the font are drawn as solid blocks of the text state.
func Rasterize(lines []string, style Style) *core.Content {
	if style.Font == nil { panic(preViolation) }
	fontHeight := style.Font.Height()

	// measure
	lineWidths := make([]int, len(lines))
	totalWidth := 0
	for i, line := range lines {
		numChars := 0
		for _, char := range line {
			lineWidths[i] += CharWidth(style.Font, char, style.Fixed, style.Bold)
			numChars += 1
		}
		lineWidths[i] += max(style.CharSpacing*(numChars - 1), 0)
		if numChars > 0 { totalWidth = max(totalWidth, lineWidths[i]) }
	}
	totalHeight := max(fontHeight*len(lines) + style.LineSpacing*(len(lines) - 1), 0)

	// draw each line
	content := core.NewFilledContent(totalWidth, totalHeight, style.BackState)
	for i, line := range lines {
		var x int
		switch style.Align.Horz() {
		case core.Right      : x = totalWidth - lineWidths[i]
		case core.HorzCenter : x = (totalWidth - lineWidths[i])/2
		}
		top := (fontHeight + style.LineSpacing)*i
		for _, char := range line {
			drawChar(content, char, x, top, style)
			x += CharWidth(style.Font, char, style.Fixed, style.Bold) + style.CharSpacing
		}
	}
	return content
}

// Returns the width a character takes when rasterized with the given
// font and flags. In fixed mode, and for characters not in the font,
// this is the font cell width. Bold adds one dot in all cases.
func CharWidth(fnt font.Font, char rune, fixed, bold bool) int {
	width := fnt.Width()
	if !fixed {
		if glyph, found := fnt.Glyph(char); found {
			width = glyph.Width()
		}
	}
	if bold { width += 1 }
	return width
}

func drawChar(content *core.Content, char rune, left, top int, style Style) {
	charWidth := CharWidth(style.Font, char, style.Fixed, style.Bold)
	charHeight := style.Font.Height()

	// unknown characters become solid blocks
	glyph, found := style.Font.Glyph(char)
	if !found {
		for y := 0; y < charHeight; y++ {
			for x := 0; x < charWidth; x++ {
				setClipped(content, left + x, top + y, style.TextState)
			}
		}
		return
	}

	// narrower glyphs are centered in fixed mode
	realWidth, padding := charWidth, 0
	if style.Fixed {
		realWidth = min(CharWidth(style.Font, char, false, style.Bold), charWidth)
		padding = (charWidth - realWidth)/2
	}

	// plain copy, leaving the bold column out
	plainWidth := charWidth
	if style.Bold { plainWidth -= 1 }
	for y := 0; y < charHeight; y++ {
		for x := 0; x < plainWidth; x++ {
			state := style.BackState
			if x >= padding && x < padding + realWidth && glyph.IsSet(x - padding, y) {
				state = style.TextState
			}
			setClipped(content, left + x, top + y, state)
		}
	}

	if style.Bold {
		embolden(content, left, top, charWidth, charHeight, style.TextState, style.BackState)
	}
}

// Content sizes are computed from the same widths used for drawing,
// so clipping only matters for fonts that report inconsistent sizes.
func setClipped(content *core.Content, x, y int, state int) {
	if x < 0 || y < 0 || x >= content.Width() || y >= content.Height() { return }
	content.Set(x, y, state)
}
