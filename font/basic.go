package font

import "image"

import "github.com/tinne26/dotmatrix/core"

import "golang.org/x/image/font/basicfont"

// Returns the face backing the [Large] font.
func basicFace() *basicfont.Face { return basicfont.Face7x13 }

// A font built from a fixed-size [basicfont.Face]. Blank rows shared
// by all glyphs are trimmed at the top and bottom, and each glyph is
// trimmed horizontally to its used columns. Glyphs without any set
// dot (like space) take half the cell width.
type basicFont struct {
	name string
	width int
	height int
	glyphs map[rune]Glyph
}

func newBasicFont(name string, face *basicfont.Face) *basicFont {
	if face == nil || face.Mask == nil { panic(preViolation) }
	cellHeight := face.Ascent + face.Descent

	// find the rows in use by any glyph
	top, bottom := cellHeight, -1
	eachBasicGlyph(face, func(_ rune, maskY int) {
		for y := 0; y < cellHeight; y++ {
			for x := 0; x < face.Width; x++ {
				if !isMaskSet(face.Mask, x, maskY + y) { continue }
				top, bottom = min(top, y), max(bottom, y)
			}
		}
	})
	if bottom < top { panic(preViolation) } // empty face

	font := &basicFont{
		name: name,
		width: face.Width,
		height: bottom - top + 1,
		glyphs: make(map[rune]Glyph, 256),
	}

	// convert glyphs
	eachBasicGlyph(face, func(r rune, maskY int) {
		left, right := face.Width, -1
		for y := top; y <= bottom; y++ {
			for x := 0; x < face.Width; x++ {
				if !isMaskSet(face.Mask, x, maskY + y) { continue }
				left, right = min(left, x), max(right, x)
			}
		}
		if right < left { // blank glyph
			left, right = 0, max(face.Width/2, 1) - 1
		}

		glyph := Glyph{ mask: core.NewContent(right - left + 1, font.height) }
		for y := 0; y < font.height; y++ {
			for x := left; x <= right; x++ {
				if isMaskSet(face.Mask, x, maskY + top + y) {
					glyph.mask.Set(x - left, y, core.On)
				}
			}
		}
		font.glyphs[r] = glyph
	})

	return font
}

func (self *basicFont) Height() int { return self.height }
func (self *basicFont) Width() int { return self.width }
func (self *basicFont) String() string { return self.name }

func (self *basicFont) Glyph(r rune) (Glyph, bool) {
	glyph, found := self.glyphs[r]
	return glyph, found
}

// Calls the given function for each rune in the face ranges, along
// with the y offset of its glyph within the face mask.
func eachBasicGlyph(face *basicfont.Face, fn func(rune, int)) {
	cellHeight := face.Ascent + face.Descent
	for _, rng := range face.Ranges {
		for r := rng.Low; r < rng.High; r++ {
			fn(r, (int(r - rng.Low) + rng.Offset)*cellHeight)
		}
	}
}

func isMaskSet(mask image.Image, x, y int) bool {
	bounds := mask.Bounds()
	x, y = x + bounds.Min.X, y + bounds.Min.Y
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		return alpha.AlphaAt(x, y).A > 127
	}
	_, _, _, a := mask.At(x, y).RGBA()
	return a > 0x7FFF
}
