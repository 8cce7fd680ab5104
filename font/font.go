// Package font defines the dot-matrix fonts used for text rasterization.
//
// Three built-in fonts are provided ([Small], [Normal] and [Large]),
// and any ggfnt pixel font can be adapted through [FromGGFNT] or [Load].
package font

import "github.com/tinne26/dotmatrix/core"

const brokenCode = "broken code"
const preViolation = "precondition violation"

type errMsg string
func (self errMsg) Error() string { return string(self) }

// A Font maps characters to dot patterns of a common height.
type Font interface {
	// Returns the height of all the glyphs, in dots.
	Height() int

	// Returns the cell width used for fixed-width text. Glyphs are
	// never wider than this.
	Width() int

	// Returns the glyph for the given character. Fonts are free to
	// normalize the character first (e.g. upper-casing it).
	Glyph(r rune) (Glyph, bool)
}

// A Glyph is the dot pattern of a single character. Glyph dots are
// only set or unset; actual states are decided during rasterization.
type Glyph struct {
	mask *core.Content
}

// Creates a glyph from text patterns, one string per row, where '#'
// marks set dots. See also [core.ParseContent]().
func NewGlyph(rows ...string) Glyph {
	return Glyph{ mask: core.ParseContent(core.On, rows...) }
}

// Creates a glyph from the given content. Any state other than
// [core.Off] counts as a set dot. The content is not copied.
func GlyphFromContent(content *core.Content) Glyph {
	if content == nil { panic(preViolation) }
	return Glyph{ mask: content }
}

// Returns the glyph width, in dots.
func (self Glyph) Width() int {
	if self.mask == nil { return 0 }
	return self.mask.Width()
}

// Returns the glyph height, in dots.
func (self Glyph) Height() int {
	if self.mask == nil { return 0 }
	return self.mask.Height()
}

// Returns whether the given dot is set. Coordinates outside the
// glyph are never set.
func (self Glyph) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= self.Width() || y >= self.Height() { return false }
	return self.mask.At(x, y) != core.Off
}

// Returns the glyph as "#"-pattern rows, mostly for tests.
func (self Glyph) String() string {
	if self.mask == nil { return "" }
	return self.mask.String()
}

// ---- table fonts ----

type tableFont struct {
	name string
	width int
	height int
	upperOnly bool
	glyphs map[rune]Glyph
}

func newTableFont(name string, width, height int, upperOnly bool) *tableFont {
	return &tableFont{
		name: name,
		width: width,
		height: height,
		upperOnly: upperOnly,
		glyphs: make(map[rune]Glyph, 128),
	}
}

func (self *tableFont) Height() int { return self.height }
func (self *tableFont) Width() int { return self.width }
func (self *tableFont) String() string { return self.name }

func (self *tableFont) Glyph(r rune) (Glyph, bool) {
	if self.upperOnly { r = ToUpper(r) }
	glyph, found := self.glyphs[r]
	return glyph, found
}

// Adds the glyphs of a row table. The table has one entry per dot
// row, and each entry one pattern per char, in order. Characters
// already defined keep their first definition.
func (self *tableFont) addRowTable(chars string, table [][]string) {
	if len(table) != self.height { panic(brokenCode) }
	index := 0
	for _, char := range chars {
		rows := make([]string, self.height)
		for y := range table {
			if index >= len(table[y]) { panic(brokenCode) }
			rows[y] = table[y][index]
		}
		if _, defined := self.glyphs[char]; !defined {
			glyph := NewGlyph(rows...)
			if glyph.Width() > self.width { panic(brokenCode) }
			self.glyphs[char] = glyph
		}
		index += 1
	}
	for y := range table {
		if len(table[y]) != index { panic(brokenCode) }
	}
}
