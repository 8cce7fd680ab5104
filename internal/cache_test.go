package internal

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/dotmatrix/core"

func TestCacheEvictsLeastRecent(t *testing.T) {
	dot := core.NewFilledContent(1, 1, core.On)
	size := int(GlyphByteSize(dot))
	cache := NewCache(size*2)

	cache.SetGlyph(1, 'A', dot)
	cache.SetGlyph(1, 'B', dot)
	assert.Equal(t, 2, cache.NumEntries())
	assert.Equal(t, size*2, cache.CurrentSize())

	cache.SetGlyph(1, 'C', dot)
	assert.Equal(t, 2, cache.NumEntries())
	_, found := cache.GetGlyph(1, 'A')
	assert.False(t, found)
	_, found = cache.GetGlyph(1, 'B')
	assert.True(t, found)
	_, found = cache.GetGlyph(1, 'C')
	assert.True(t, found)
	assert.Equal(t, uint64(size*2), cache.PeakSize())
}

func TestCacheReplaceRefreshesEntry(t *testing.T) {
	dot := core.NewFilledContent(1, 1, core.On)
	cache := NewCache(int(GlyphByteSize(dot))*2)

	cache.SetGlyph(7, 'A', dot)
	cache.SetGlyph(7, 'B', dot)
	replacement := core.NewFilledContent(1, 1, 2)
	cache.SetGlyph(7, 'A', replacement) // 'A' is now the most recent
	cache.SetGlyph(7, 'C', dot)         // so 'B' goes

	glyph, found := cache.GetGlyph(7, 'A')
	require.True(t, found)
	assert.Same(t, replacement, glyph)
	_, found = cache.GetGlyph(7, 'B')
	assert.False(t, found)
	assert.Equal(t, 2, cache.NumEntries())
}

func TestCacheFontKeysAreIndependent(t *testing.T) {
	cache := NewCache(DefaultCacheSize)
	a := core.NewFilledContent(2, 2, core.On)
	b := core.NewFilledContent(3, 3, core.On)
	cache.SetGlyph(1, 0, a)
	cache.SetGlyph(2, 0, b)

	glyph, found := cache.GetGlyph(1, 0)
	require.True(t, found)
	assert.Same(t, a, glyph)
	glyph, found = cache.GetGlyph(2, 0)
	require.True(t, found)
	assert.Same(t, b, glyph)
}

func TestCacheCapacity(t *testing.T) {
	dot := core.NewFilledContent(1, 1, core.On)
	size := int(GlyphByteSize(dot))
	cache := NewCache(size*4)
	for i := range 4 { cache.SetGlyph(0, uint64(i), dot) }
	assert.Equal(t, 4, cache.NumEntries())

	cache.SetCapacity(size*2)
	assert.Equal(t, 2, cache.NumEntries())
	_, found := cache.GetGlyph(0, 3)
	assert.True(t, found)
	_, found = cache.GetGlyph(0, 0)
	assert.False(t, found)

	cache.SetCapacity(0)
	assert.Equal(t, 0, cache.NumEntries())
	assert.Equal(t, 0, cache.CurrentSize())
	cache.SetGlyph(0, 9, dot) // doesn't fit
	assert.Equal(t, 0, cache.NumEntries())

	cache.SetCapacity(size)
	cache.SetGlyph(0, 9, dot)
	assert.Equal(t, 1, cache.NumEntries())
	assert.Panics(t, func() { cache.SetCapacity(-1) })
}
