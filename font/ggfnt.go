package font

import "io"
import "os"
import "fmt"

import "github.com/tinne26/dotmatrix/core"
import "github.com/tinne26/dotmatrix/internal"

import "github.com/tinne26/ggfnt"

// A [Font] backed by a ggfnt pixel font. Glyphs are rasterized with
// the font's default settings, and any non-transparent pixel becomes
// a set dot. Converted glyphs are kept in the package glyph cache
// (see the cache subpackage).
type GGFNT struct {
	font *ggfnt.Font
	settings ggfnt.SettingsCache
	fontKey uint64
	ascent int
	height int
	width int
}

// Creates a dot-matrix font from the given ggfnt font. The glyph
// height is the font's ascent plus descent, and the cell width for
// fixed-width text is the widest advance among the mapped ASCII
// glyphs. Wider glyphs elsewhere in the font are cropped.
func FromGGFNT(font *ggfnt.Font) *GGFNT {
	if font == nil { panic("nil font") }
	ascent := int(font.Metrics().Ascent())
	descent := int(font.Metrics().Descent())
	adapter := &GGFNT{
		font: font,
		settings: *ggfnt.NewSettingsCache(font),
		fontKey: font.Header().ID(),
		ascent: ascent,
		height: ascent + descent,
	}
	for r := rune(' '); r <= '~'; r++ {
		index, found := adapter.glyphIndex(r)
		if !found { continue }
		adapter.width = max(adapter.width, int(font.Glyphs().Advance(index)))
	}
	if adapter.width == 0 { adapter.width = max(adapter.height/2, 1) }
	return adapter
}

// Tries to parse a font from the given source and adapts it with
// [FromGGFNT](). Accepted types are [*ggfnt.Font], [io.Reader],
// []byte and string (as a filepath).
//
// For the specific case of a non-nil [*ggfnt.Font], the returned
// error is always guaranteed to be nil.
func Load(source any) (*GGFNT, error) {
	switch typedSource := source.(type) {
	case ggfnt.Font:
		panic("[font.Load] please use *ggfnt.Font, not ggfnt.Font")
	case *ggfnt.Font:
		return FromGGFNT(typedSource), nil
	case io.Reader:
		return loadFromReader(typedSource)
	case []byte:
		return loadFromReader(&byteSliceReader{ data: typedSource })
	case string:
		file, err := os.Open(typedSource)
		if err != nil { return nil, fmt.Errorf("font.Load: %w", err) }
		font, err := loadFromReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return font, file.Close()
	default:
		return nil, errMsg("invalid ggfnt font source type")
	}
}

func loadFromReader(reader io.Reader) (*GGFNT, error) {
	font, err := ggfnt.Parse(reader)
	if err != nil { return nil, fmt.Errorf("font.Load: %w", err) }
	return FromGGFNT(font), nil
}

// Returns the underlying ggfnt font.
func (self *GGFNT) Font() *ggfnt.Font { return self.font }

func (self *GGFNT) Height() int { return self.height }
func (self *GGFNT) Width() int { return self.width }

func (self *GGFNT) Glyph(r rune) (Glyph, bool) {
	index, found := self.glyphIndex(r)
	if !found { return Glyph{}, false }

	mask, found := internal.DefaultCache.GetGlyph(self.fontKey, uint64(index))
	if !found {
		mask = self.rasterize(index)
		internal.DefaultCache.SetGlyph(self.fontKey, uint64(index), mask)
	}
	return Glyph{ mask: mask }, true
}

func (self *GGFNT) glyphIndex(r rune) (ggfnt.GlyphIndex, bool) {
	group, found := self.font.Mapping().Utf8(r, self.settings.UnsafeSlice())
	if !found || group.Size() == 0 { return 0, false }
	return group.Select(0), true
}

// The glyph spans its advance horizontally and the font's ascent
// plus descent vertically, with the baseline at y == ascent. Glyphs
// wider than the cell width are cropped to it.
func (self *GGFNT) rasterize(index ggfnt.GlyphIndex) *core.Content {
	width := min(int(self.font.Glyphs().Advance(index)), self.width)
	content := core.NewContent(width, self.height)
	alpha := self.font.Glyphs().RasterizeMask(index)
	if alpha == nil { return content } // blank glyph

	for y := 0; y < self.height; y++ {
		maskY := y - self.ascent
		if maskY < alpha.Rect.Min.Y || maskY >= alpha.Rect.Max.Y { continue }
		for x := max(alpha.Rect.Min.X, 0); x < min(alpha.Rect.Max.X, width); x++ {
			if alpha.AlphaAt(x, maskY).A > 0 {
				content.Set(x, y, core.On)
			}
		}
	}
	return content
}

// implements io.Reader for []byte
type byteSliceReader struct { data []byte ; index int }
func (self *byteSliceReader) Read(buffer []byte) (int, error) {
	maxRead := len(self.data) - self.index
	if maxRead <= 0 { return 0, io.EOF }
	if len(buffer) == 0 { return 0, nil }
	if len(buffer) >= maxRead {
		copy(buffer, self.data[self.index : self.index + maxRead])
		self.index += maxRead
		return maxRead, io.EOF
	} else {
		copy(buffer, self.data[self.index : self.index + len(buffer)])
		self.index += len(buffer)
		return len(buffer), nil
	}
}
